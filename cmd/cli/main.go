// Command cli is an operator tool for seeding demo users and accounts.
// The PIN is read from the terminal without echo and stored hashed.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/paisabank/paisabank/infra/initializer"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  seed-user <name> <email> <phone> <upi_id>")
		fmt.Println("  seed-account <email> <phone> <account_no> <upi_id> <balance>")
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "seed-user":
		if len(os.Args) < 6 {
			color.Red("Usage: cli seed-user <name> <email> <phone> <upi_id>")
			os.Exit(1)
		}
		if err := seedUser(ctx, deps.Uow, os.Args[2], os.Args[3], os.Args[4], os.Args[5]); err != nil {
			color.Red("Error: %v", err)
			os.Exit(1)
		}
	case "seed-account":
		if len(os.Args) < 7 {
			color.Red("Usage: cli seed-account <email> <phone> <account_no> <upi_id> <balance>")
			os.Exit(1)
		}
		if err := seedAccount(ctx, deps.Uow, os.Args[2], os.Args[3], os.Args[4], os.Args[5], os.Args[6]); err != nil {
			color.Red("Error: %v", err)
			os.Exit(1)
		}
	default:
		color.Red("Unknown command: %s", os.Args[1])
		os.Exit(1)
	}
}

func seedUser(ctx context.Context, uow repository.UnitOfWork, name, email, phone, upiID string) error {
	fmt.Print("Choose a PIN: ")
	pin, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read PIN: %w", err)
	}
	if len(pin) == 0 {
		return fmt.Errorf("PIN cannot be empty")
	}

	hashed, err := user.HashPIN(string(pin))
	if err != nil {
		return fmt.Errorf("hash PIN: %w", err)
	}

	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.UserCreate{
			Name:      name,
			Email:     email,
			Phone:     phone,
			HashedPin: hashed,
			UpiID:     upiID,
		})
	})
	if err != nil {
		return err
	}
	color.Green("User %s created (%s)", name, upiID)
	return nil
}

func seedAccount(ctx context.Context, uow repository.UnitOfWork, email, phone, accountNo, upiID, balance string) error {
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.AccountCreate{
			AccountNo: accountNo,
			Email:     email,
			Phone:     phone,
			UpiID:     upiID,
			Balance:   bal,
			IsPrimary: true,
		})
	})
	if err != nil {
		return err
	}
	color.Green("Account %s created with balance %s", accountNo, bal.StringFixed(2))
	return nil
}
