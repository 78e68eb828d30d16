// catalogctl: utilidades operativas del catálogo.
//
//	catalogctl seed-admin --username admin --email admin@example.com --password <p>
//	catalogctl genhash <password>
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

func main() {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Utilidades operativas de catalogo-api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seedAdminCmd(), genhashCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func seedAdminCmd() *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el primer usuario admin si la tabla de usuarios está vacía",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := postgres.NewUserRepository(pool)
			n, err := repo.Count()
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("ya existen %d usuarios; seed-admin solo corre sobre tabla vacía", n)
			}
			cost := cfg.Auth.BcryptCost
			if cost == 0 {
				cost = bcrypt.DefaultCost
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
			if err != nil {
				return err
			}
			now := time.Now()
			user := &entity.User{
				ID:           uuid.New().String(),
				Username:     username,
				Email:        auth.NormalizeEmail(email),
				PasswordHash: string(hash),
				Role:         entity.RoleAdmin,
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := repo.Create(user); err != nil {
				return err
			}
			fmt.Println("admin creado:", user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "username del admin inicial")
	cmd.Flags().StringVar(&email, "email", "", "email del admin inicial")
	cmd.Flags().StringVar(&password, "password", "", "password en texto (se hashea)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func genhashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genhash <password>",
		Short: "Genera un hash bcrypt para usar en seeds o fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}
