package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/growvy/onboard/internal/bot"
	"github.com/growvy/onboard/internal/onboarding"
	"github.com/growvy/onboard/internal/resume"
	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/internal/term"
	"github.com/growvy/onboard/internal/wizard"
	apierrors "github.com/growvy/onboard/pkg/errors"
	"github.com/growvy/onboard/pkg/types"
)

func (a *app) cmdRegister(ctx context.Context) error {
	in := bufio.NewScanner(os.Stdin)
	name := promptLine(in, "Full name")
	email := promptLine(in, "Email")
	password := promptLine(in, "Password")

	status, err := a.client.Register(ctx, types.RegisterRequest{
		FullName: name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s!\n", status.FullName)
	return a.landAt(session.RouteFor(status))
}

func (a *app) cmdLogin(ctx context.Context) error {
	in := bufio.NewScanner(os.Stdin)
	email := promptLine(in, "Email")
	password := promptLine(in, "Password")

	status, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s.\n", status.FullName)
	return a.landAt(session.RouteFor(status))
}

// landAt tells the user where their account state points, mirroring the
// post-login redirect.
func (a *app) landAt(route session.Route) error {
	switch route {
	case session.RouteAdminDashboard:
		fmt.Println("You have admin access. Try `growvy admin stats`.")
	case session.RouteProfile:
		fmt.Println("Your profile is active. Try `growvy profile` or `growvy jobs`.")
	case session.RoutePricing:
		fmt.Println("Your profile is waiting on payment. Try `growvy payment <receipt>`.")
	default:
		fmt.Println("Let's get you set up. Run `growvy onboard`.")
	}
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sess.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func (a *app) cmdOnboard(ctx context.Context) error {
	draft := wizard.NewStore()
	uploader := resume.NewUploader(a.client, a.store, draft, a.cfg.MaxResumeSize)
	prompter := term.NewPrompter(os.Stdin, os.Stdout)

	catalog, err := onboarding.LoadCatalog()
	if err != nil {
		return err
	}
	flow, err := onboarding.NewFlow(catalog, draft, a.client, a.store, uploader, prompter)
	if err != nil {
		return err
	}

	// A previous run's analysis pre-fills the draft before any prompting.
	if cached := resume.CachedAnalysis(a.store); cached != nil {
		patch := wizard.Patch{}
		if cached.DetectedRole != "" {
			patch.JobTitle = &cached.DetectedRole
		}
		if cached.DetectedLocation != "" {
			patch.Location = &types.Location{Place: cached.DetectedLocation}
		}
		if patch.JobTitle != nil || patch.Location != nil {
			if err := draft.Merge(patch); err != nil {
				return err
			}
		}
	}

	return flow.Run(ctx)
}

func (a *app) cmdPreview(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: growvy preview <file.html>")
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	text, err := resume.HTMLPreview(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	fmt.Println(text)
	return nil
}

func (a *app) cmdProfile(ctx context.Context) error {
	profile, err := a.client.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Job title:     %s\n", profile.JobTitle)
	if profile.SalaryExpectation != nil {
		fmt.Printf("Salary:        %d (%s)\n", profile.SalaryExpectation.Amount, profile.SalaryExpectation.Type)
	}
	fmt.Printf("Skills:        %s\n", strings.Join(profile.Skills, ", "))
	fmt.Printf("Location:      %s\n", profile.Location)
	fmt.Printf("Benefits:      %s\n", strings.Join(profile.Benefits, ", "))
	fmt.Printf("Career level:  %s\n", profile.CareerLevel)
	fmt.Printf("Work type:     %s\n", profile.WorkType)
	fmt.Printf("Payment:       %s\n", profile.PaymentStatus)
	return nil
}

func (a *app) cmdJobs(ctx context.Context) error {
	jobs, err := a.client.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No job matches yet.")
		return nil
	}
	for _, job := range jobs {
		fmt.Printf("%s — %s (%s)\n", job.Title, job.Company, job.Location)
		if job.Salary != "" {
			fmt.Printf("  %s, %s\n", job.Salary, job.Type)
		}
	}
	return nil
}

func (a *app) cmdPayment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: growvy payment <receipt-file>")
	}

	in := bufio.NewScanner(os.Stdin)
	name := promptLine(in, "Name on the payment")
	email := promptLine(in, "Email")
	method := promptLine(in, "Payment method")

	plan := a.store.Get(session.KeySelectedPlan)
	if plan == "" {
		plan = promptLine(in, "Plan")
	} else {
		fmt.Printf("Plan: %s\n", plan)
	}

	terms := strings.EqualFold(promptLine(in, "Accept the terms of service? (yes/no)"), "yes")

	err := a.client.SubmitPayment(ctx, types.PaymentRequest{
		Name:          name,
		Email:         email,
		Method:        method,
		Plan:          plan,
		TermsAccepted: terms,
		ReceiptPath:   args[0],
	})
	if err != nil {
		return err
	}
	fmt.Println("Payment submitted. We'll verify it shortly.")
	return nil
}

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: growvy admin <stats|profiles|jobs|applications|add-job|payment-done>")
	}
	switch args[0] {
	case "stats":
		stats, err := a.client.AdminStats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Users: %d  Jobs: %d  Applications: %d  Profiles: %d\n",
			stats.Users, stats.Jobs, stats.Applications, stats.Profiles)
		return nil

	case "profiles":
		profiles, err := a.client.AdminProfiles(ctx)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Printf("%s  %s  %s  payment=%s\n", p.ID, p.Email, p.JobTitle, p.PaymentStatus)
		}
		return nil

	case "jobs":
		jobs, err := a.client.AdminJobs(ctx)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			fmt.Printf("%s  %s — %s\n", job.ID, job.Title, job.Company)
		}
		return nil

	case "applications":
		apps, err := a.client.AdminApplications(ctx)
		if err != nil {
			return err
		}
		for _, ap := range apps {
			fmt.Printf("%s  %s  %s  status=%s\n", ap.ID, ap.JobTitle, ap.Applicant, ap.Status)
		}
		return nil

	case "add-job":
		in := bufio.NewScanner(os.Stdin)
		job := types.Job{
			Title:       promptLine(in, "Title"),
			Company:     promptLine(in, "Company"),
			Location:    promptLine(in, "Location"),
			Salary:      promptLine(in, "Salary"),
			Type:        promptLine(in, "Type"),
			Experience:  promptLine(in, "Experience"),
			Description: promptLine(in, "Description"),
		}
		created, err := a.client.AdminAddJob(ctx, job)
		if err != nil {
			return err
		}
		fmt.Printf("Job %s created.\n", created.ID)
		return nil

	case "payment-done":
		if len(args) != 2 {
			return fmt.Errorf("usage: growvy admin payment-done <profile-id>")
		}
		if err := a.client.AdminMarkPaymentDone(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("Payment marked as done.")
		return nil
	}
	return fmt.Errorf("unknown admin subcommand %q", args[0])
}

func (a *app) cmdBot(ctx context.Context) error {
	if a.cfg.DiscordToken == "" {
		return fmt.Errorf("DISCORD_BOT_TOKEN is not set")
	}

	draft := wizard.NewStore()
	uploader := resume.NewUploader(a.client, a.store, draft, a.cfg.MaxResumeSize)
	b, err := bot.New(a.cfg.DiscordToken, uploader)
	if err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Close()

	<-ctx.Done()
	return nil
}

func promptLine(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// renderError prefers the taxonomy's user-facing message and appends
// per-field details from validation failures.
func renderError(err error) string {
	var apiErr *apierrors.ApiError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	msg := apiErr.UserMessage()
	for _, fe := range apiErr.Fields {
		msg += fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message)
	}
	return msg
}
