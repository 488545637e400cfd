package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/plan-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/plan-tracker-api/infrastructure/migration"
	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/config"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/middleware"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Administra o schema e os usuários iniciais do plan-tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUpCmd(),
		newDownCmd(),
		newVersionCmd(),
		newCreateAdminCmd(),
	)

	return root
}

// withConnection abre a conexão configurada e a fecha ao final de fn
func withConnection(ctx context.Context, fn func(cfg *config.Config, conn *postgres.Connection) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(cfg, conn)
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica as migrações pendentes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(_ *config.Config, conn *postgres.Connection) error {
				if err := migration.Run(conn.DB); err != nil {
					return err
				}
				log.L.Info("Migrações aplicadas com sucesso")
				return nil
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Desfaz as últimas migrações",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(_ *config.Config, conn *postgres.Connection) error {
				mg, err := migration.New(conn.DB)
				if err != nil {
					return err
				}
				if err := mg.Down(steps); err != nil {
					return err
				}
				log.L.WithField("steps", steps).Info("Migrações desfeitas")
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a desfazer")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual do schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(_ *config.Config, conn *postgres.Connection) error {
				mg, err := migration.New(conn.DB)
				if err != nil {
					return err
				}
				version, dirty, err := mg.Version()
				if err != nil {
					return fmt.Errorf("erro ao ler versão do schema: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "versão %d (dirty=%t)\n", version, dirty)
				return nil
			})
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var name, lastname, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Cria um usuário administrador",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConnection(cmd.Context(), func(cfg *config.Config, conn *postgres.Connection) error {
				authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)

				user, err := authenticator.CreateUser(cmd.Context(), &domain.User{
					Name:         name,
					Lastname:     lastname,
					Email:        email,
					PasswordHash: password,
					Active:       true,
					RoleID:       middleware.RoleAdmin,
				})
				if err != nil {
					return err
				}

				log.L.WithField("user_id", user.ID).Info("Administrador criado")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nome do administrador")
	cmd.Flags().StringVar(&lastname, "lastname", "", "sobrenome do administrador")
	cmd.Flags().StringVar(&email, "email", "", "email de login")
	cmd.Flags().StringVar(&password, "password", "", "senha inicial")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
