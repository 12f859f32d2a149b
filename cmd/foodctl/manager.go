package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/repo/postgres"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newManagerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager",
		Short: "Учётные записи менеджеров бэк-офиса",
	}
	cmd.AddCommand(newManagerCreateCmd())
	return cmd
}

func newManagerCreateCmd() *cobra.Command {
	var (
		password string
		staff    bool
	)

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Создать менеджера или сменить ему пароль",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(args[0])
			if username == "" {
				return errors.New("username is empty")
			}
			hash, err := hashPassword(password)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.cleanup()

			m := &domain.Manager{Username: username, PasswordHash: hash, IsStaff: staff}
			if err := postgres.NewManagerRepository(e.pool).Upsert(ctx, m); err != nil {
				return fmt.Errorf("save manager: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "manager %s saved (id=%d, staff=%t)\n", m.Username, m.ID, m.IsStaff)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "пароль (не короче 8 символов)")
	cmd.Flags().BoolVar(&staff, "staff", true, "доступ к бэк-офису")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// minPasswordLen — минимальная длина пароля менеджера.
const minPasswordLen = 8

func hashPassword(password string) (string, error) {
	if len([]rune(password)) < minPasswordLen {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
