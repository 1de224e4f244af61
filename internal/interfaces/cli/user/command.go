// Package user manages steward accounts from the command line. Accounts are
// never created through the web console.
package user

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	adminUsecases "github.com/tosinajy/carrier-code-verify/internal/application/admin/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/auth"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/database"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/clienv"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

var (
	flags    clienv.Flags
	username string
	password string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage steward accounts",
	}

	flags.Bind(cmd)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a steward account",
		Long:  `Create an account. The password is read from the terminal when --password is omitted.`,
		RunE:  runCreate,
	}
	create.Flags().StringVarP(&username, "username", "u", "", "Login name (required)")
	create.Flags().StringVarP(&password, "password", "p", "", "Password, 8 to 72 characters")
	create.Flags().StringVarP(&role, "role", "r", "admin", "Role (admin, viewer)")
	_ = create.MarkFlagRequired("username")

	list := &cobra.Command{
		Use:   "list",
		Short: "List steward accounts",
		RunE:  runList,
	}

	cmd.AddCommand(create, list)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := flags.Init(true)
	if err != nil {
		return err
	}
	defer clienv.Close()

	pw := password
	if pw == "" {
		if pw, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	return CreateUser(cmd.Context(), cmd.OutOrStdout(), database.Get(), hasher, log, usecases.CreateUserCommand{
		Username: username,
		Password: pw,
		Role:     role,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	_, log, err := flags.Init(true)
	if err != nil {
		return err
	}
	defer clienv.Close()

	return ListUsers(cmd.Context(), cmd.OutOrStdout(), database.Get(), log)
}

// CreateUser stores one account and prints its id.
func CreateUser(ctx context.Context, out io.Writer, gdb *gorm.DB, hasher *auth.BcryptPasswordHasher, log logger.Interface, c usecases.CreateUserCommand) error {
	if ctx == nil {
		ctx = context.Background()
	}

	uc := usecases.NewCreateUserUseCase(repository.NewUserRepository(gdb, log), hasher, log)
	u, err := uc.Execute(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	_, err = fmt.Fprintf(out, "Created %s %q (id %d)\n", u.Role(), u.Username(), u.ID())
	return err
}

// ListUsers prints every account as a table.
func ListUsers(ctx context.Context, out io.Writer, gdb *gorm.DB, log logger.Interface) error {
	if ctx == nil {
		ctx = context.Background()
	}

	users, err := adminUsecases.NewListUsersUseCase(repository.NewUserRepository(gdb, log), log).Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.UserID, u.Username, u.Role, biztime.FormatInBizTimezone(u.CreatedAt, "2006-01-02 15:04"))
	}
	return tw.Flush()
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	defer fmt.Fprintln(prompt)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
