package view

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/domain"
)

// Balances renders the profile balance header shown on every screen that has
// a loaded profile.
func Balances(p *domain.UserProfile) string {
	return fmt.Sprintf(
		"💰 Balance: *%s* | Available: *%s* | Bonus: *%s*",
		Amount(p.Balance), Amount(p.AvailableBalance), Amount(p.Bonus),
	)
}

// Tasks renders the available task list with one control per task.
func Tasks(tasks []domain.Task, failed bool) Fragment {
	if failed {
		return Fragment{Text: "⚠️ Failed to load tasks. Please try again later."}
	}
	if len(tasks) == 0 {
		return Fragment{Text: "📋 No tasks available at the moment. Check back later!"}
	}

	var sb strings.Builder
	sb.WriteString("📋 *Available tasks:*\n")
	var rows [][]Button
	for _, t := range tasks {
		fmt.Fprintf(&sb, "\n• *%s* — reward %s", t.Title, Amount(t.Reward))
		rows = append(rows, Row(Btn(t.Title, "task_"+t.ID)))
	}
	return Fragment{Text: sb.String(), Buttons: rows}
}

// TaskDetail renders a single task with its submission control. The
// instruction must already be reduced to plain text by the caller.
func TaskDetail(t domain.Task) Fragment {
	text := fmt.Sprintf(
		"📋 *%s*\n\n%s\n\nReward: *%s*",
		t.Title, t.Instruction, Amount(t.Reward),
	)
	return Fragment{
		Text: text,
		Buttons: [][]Button{
			Row(Btn("✍️ Submit completion", "submit_"+t.ID)),
			Row(Btn("⬅️ Back to tasks", "view_tasks")),
		},
	}
}

// TopEarners renders the leaderboard. Rank is positional, 1-indexed.
func TopEarners(entries []domain.LeaderboardEntry, failed bool) Fragment {
	if failed {
		return Fragment{Text: "⚠️ Failed to load top earners."}
	}
	if len(entries) == 0 {
		return Fragment{Text: "🏆 No top earners data available."}
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Top earners:*\n")
	for i, e := range entries {
		fmt.Fprintf(&sb, "\n%d. %s — %s", i+1, e.Username, Amount(e.TotalEarned))
	}
	return Fragment{Text: sb.String()}
}

// Withdraw renders the withdrawal screen. The new-withdrawal control appears
// only when the available balance covers the minimum.
func Withdraw(p *domain.UserProfile, history []domain.WithdrawalRecord, historyFailed bool) Fragment {
	var sb strings.Builder
	sb.WriteString("💸 *Withdraw*\n\n")

	var rows [][]Button
	if p == nil {
		sb.WriteString("⚠️ Failed to load balance. Please try again later.")
	} else {
		fmt.Fprintf(&sb, "Available balance: *%s*", Amount(p.AvailableBalance))
		if p.CanWithdraw() {
			rows = append(rows, Row(Btn("💸 New withdrawal", "wd_new")))
		} else {
			fmt.Fprintf(&sb, "\nMinimum withdrawal amount is %s.", Amount(domain.MinWithdrawal))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(WithdrawalHistory(history, historyFailed).Text)
	return Fragment{Text: sb.String(), Buttons: rows}
}

// WithdrawalHistory renders past withdrawal requests.
func WithdrawalHistory(records []domain.WithdrawalRecord, failed bool) Fragment {
	if failed {
		return Fragment{Text: "⚠️ Failed to load withdrawal history."}
	}
	if len(records) == 0 {
		return Fragment{Text: "No withdrawal history found."}
	}

	var sb strings.Builder
	sb.WriteString("📜 *Withdrawal history:*\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "\n%s — %s via %s — %s %s",
			Date(r.Timestamp), Amount(r.Amount), r.Method.DisplayName(),
			withdrawalBadge(r.Status), r.Status,
		)
	}
	return Fragment{Text: sb.String()}
}

// MethodPicker renders the payout method selection.
func MethodPicker() Fragment {
	var rows [][]Button
	for _, m := range domain.WithdrawalMethods {
		rows = append(rows, Row(Btn(m.DisplayName(), "wd_method_"+string(m))))
	}
	rows = append(rows, Row(Btn("✖️ Cancel", "wd_cancel")))
	return Fragment{Text: "Select a payment method:", Buttons: rows}
}

// PaymentHistory renders the account ledger with signed amounts.
func PaymentHistory(records []domain.PaymentHistoryRecord, failed bool) Fragment {
	if failed {
		return Fragment{Text: "⚠️ Failed to load payment history."}
	}
	if len(records) == 0 {
		return Fragment{Text: "No payment history found."}
	}

	var sb strings.Builder
	sb.WriteString("📜 *Payment history:*\n")
	for _, r := range records {
		marker := "🟢"
		if !r.Credit() {
			marker = "🔴"
		}
		fmt.Fprintf(&sb, "\n%s %s — %s — *%s* (%s)",
			marker, Date(r.Timestamp), r.Description, SignedAmount(r.Amount), r.StatusOrDefault(),
		)
	}
	return Fragment{Text: sb.String()}
}

// Bonus renders the bonus screen. The claim control appears only while the
// last known status allows claiming.
func Bonus(status *domain.BonusStatus, failed bool) Fragment {
	if failed || status == nil {
		return Fragment{Text: "⚠️ Failed to check bonus status."}
	}

	bonus := Amount(decimal.NewFromFloat(config.BonusAmount))
	if status.CanClaim {
		return Fragment{
			Text: fmt.Sprintf(
				"🎁 *Daily bonus*\n\nStatus: Ready to Claim\nYou can claim your %s bonus now!", bonus,
			),
			Buttons: [][]Button{Row(Btn("🎁 Claim bonus", "claim_bonus"))},
		}
	}
	return Fragment{
		Text: fmt.Sprintf(
			"🎁 *Daily bonus*\n\nStatus: Bonus Claimed\nNext bonus available in %s",
			TimeRemaining(status.TimeRemaining),
		),
	}
}

// Profile renders the account screen.
func Profile(email string, p *domain.UserProfile, failed bool) Fragment {
	if failed || p == nil {
		return Fragment{Text: "⚠️ Failed to load profile. Please try again later."}
	}

	text := fmt.Sprintf(
		"👤 *Profile*\n\nUsername: %s\nEmail: %s\n\n%s",
		p.Username, email, Balances(p),
	)
	return Fragment{
		Text:    text,
		Buttons: [][]Button{Row(Btn("🔒 Change password", "change_password"))},
	}
}

// Nav renders the mutually-exclusive view selector shown under each screen.
func Nav() Fragment {
	return Fragment{
		Buttons: [][]Button{
			Row(Btn("📋 Tasks", "view_tasks"), Btn("💸 Withdraw", "view_withdraw"), Btn("📜 History", "view_history")),
			Row(Btn("🎁 Bonus", "view_bonus"), Btn("👤 Profile", "view_profile"), Btn("🚩 Report", "view_report")),
		},
	}
}

// Report renders the problem-report entry screen.
func Report() Fragment {
	return Fragment{
		Text: "🚩 *Report a problem*\n\nDescribe the issue and our team will take a look.",
		Buttons: [][]Button{
			Row(Btn("✍️ New report", "report_new")),
		},
	}
}
