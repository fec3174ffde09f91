package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/growvy/onboard/internal/client"
	"github.com/growvy/onboard/internal/config"
	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/pkg/logger"
)

const usage = `growvy - remote job matching client

Usage: growvy <command> [args]

Commands:
  register            Create an account and sign in
  login               Sign in and land where your account state points
  logout              Drop the stored credential
  onboard             Run the onboarding wizard
  preview <file>      Show the text of an HTML resume before uploading
  profile             Show your submitted profile
  jobs                List your job matches
  payment <receipt>   Submit a payment with a receipt file
  admin <subcommand>  stats | profiles | jobs | applications | add-job | payment-done
  bot                 Run the Discord resume-intake assistant
`

type app struct {
	cfg    *config.Config
	store  *session.Store
	sess   *session.Session
	client *client.Client
}

func main() {
	logger.Setup()
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store := session.NewStore(cfg.StatePath)
	sess := session.New(store)
	a := &app{
		cfg:    cfg,
		store:  store,
		sess:   sess,
		client: client.New(cfg, sess),
	}
	sess.OnExpired(func() {
		fmt.Fprintln(os.Stderr, "Your session expired. Run `growvy login` to sign in again.")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.cmdRegister(ctx)
	case "login":
		return a.cmdLogin(ctx)
	case "logout":
		return a.cmdLogout()
	case "onboard":
		return a.cmdOnboard(ctx)
	case "preview":
		return a.cmdPreview(args)
	case "profile":
		return a.cmdProfile(ctx)
	case "jobs":
		return a.cmdJobs(ctx)
	case "payment":
		return a.cmdPayment(ctx, args)
	case "admin":
		return a.cmdAdmin(ctx, args)
	case "bot":
		return a.cmdBot(ctx)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	}
	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("unknown command %q", command)
}
