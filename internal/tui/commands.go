package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
)

const fetchTimeout = 30 * time.Second

// fetchIncomes loads the income collection from the server.
func fetchIncomes(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := client.ListIncomes(ctx)
		if errors.Is(err, api.ErrUnauthorized) {
			return sessionExpiredMsg{}
		}
		return incomesLoadedMsg{records: records, err: err}
	}
}

// fetchExpenses loads the expense collection from the server.
func fetchExpenses(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := client.ListExpenses(ctx)
		if errors.Is(err, api.ErrUnauthorized) {
			return sessionExpiredMsg{}
		}
		return expensesLoadedMsg{records: records, err: err}
	}
}

// fetchLoans loads the loan collection from the server.
func fetchLoans(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := client.ListLoans(ctx)
		if errors.Is(err, api.ErrUnauthorized) {
			return sessionExpiredMsg{}
		}
		return loansLoadedMsg{records: records, err: err}
	}
}
