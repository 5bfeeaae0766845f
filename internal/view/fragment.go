// Package view maps domain-state slices to display fragments. Renderers are
// pure: the same slice always yields the same fragment, and the empty
// collection renders a "no data" placeholder distinct from the "failed to
// load" one. The telegram package materializes fragments into actual markup.
package view

// Button is a view-model for one interactive control.
type Button struct {
	Label string
	Data  string
}

// Fragment is a rendered screen section: display text plus button rows.
type Fragment struct {
	Text    string
	Buttons [][]Button
}

func Btn(label, data string) Button {
	return Button{Label: label, Data: data}
}

func Row(buttons ...Button) []Button {
	return buttons
}

// Join concatenates fragments into one screen, separating text sections with
// blank lines and stacking button rows in order.
func Join(fragments ...Fragment) Fragment {
	var out Fragment
	for _, f := range fragments {
		if f.Text != "" {
			if out.Text != "" {
				out.Text += "\n\n"
			}
			out.Text += f.Text
		}
		out.Buttons = append(out.Buttons, f.Buttons...)
	}
	return out
}
