package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/bank"
)

func (a *app) runBank(w io.Writer) error {
	fmt.Fprintln(w, "=== MINI BANK ===")

	b := bank.New(a.logger)
	acc, err := b.CreateAccount("001", 500)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Account %s created with ₱%.2f\n", acc.Number, acc.Balance())
	savings, err := b.CreateAccount("002", 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Account %s created with ₱%.2f\n", savings.Number, savings.Balance())

	if err := acc.Deposit(200); err != nil {
		return err
	}
	fmt.Fprintf(w, "💵 Deposited ₱200.00 into %s\n", acc.Number)
	if err := acc.Withdraw(100); err != nil {
		return err
	}
	fmt.Fprintf(w, "🏧 Withdrew ₱100.00 from %s\n", acc.Number)
	fmt.Fprintf(w, "Final balance: ₱%.2f\n", acc.Balance())

	heading(w, "RULES IN ACTION")
	report := func(what string, err error) {
		if err != nil {
			fmt.Fprintf(w, "❌ %s: %v\n", what, err)
			return
		}
		fmt.Fprintf(w, "✅ %s\n", what)
	}
	report("Withdraw ₱1000.00 from 001", acc.Withdraw(1000))
	report("Deposit ₱0.00 into 001", acc.Deposit(0))
	report("Transfer ₱250.00 from 001 to 002", b.Transfer("001", "002", 250))
	report("Freeze 002", savings.Freeze())
	report("Transfer ₱50.00 from 001 to 002", b.Transfer("001", "002", 50))
	report("Close 001", acc.Close())
	report("Open 001 again", openErr(b.CreateAccount("001", 10)))
	report("Activate 002", savings.Activate())

	heading(w, "ACCOUNTS")
	for _, ac := range b.Accounts() {
		fmt.Fprintf(w, "%s: ₱%.2f (%s)\n", ac.Number, ac.Balance(), ac.Status())
	}
	fmt.Fprintf(w, "Total deposits: ₱%.2f\n", b.TotalDeposits())
	return nil
}

func openErr(_ *bank.Account, err error) error { return err }
