// Package bot is the Discord front-end for resume intake: drop a resume
// in a channel the bot watches and it validates, uploads, and replies
// with what the analyzer detected.
package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/growvy/onboard/internal/resume"
)

type Bot struct {
	session  *discordgo.Session
	uploader *resume.Uploader
	http     *http.Client
}

func New(token string, uploader *resume.Uploader) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	bot := &Bot{
		session:  session,
		uploader: uploader,
		http:     http.DefaultClient,
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("Bot is running...", "component", "bot")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	for _, att := range m.Attachments {
		if isResumeAttachment(att.Filename) {
			go b.processResume(s, m, att)
			break
		}
	}
}

func isResumeAttachment(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, allowed := range resume.AllowedExtensions() {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (b *Bot) processResume(s *discordgo.Session, m *discordgo.MessageCreate, att *discordgo.MessageAttachment) {
	logger := slog.With("component", "bot", "operation", "process_resume", "file", att.Filename)
	logger.Info("Processing resume attachment", "url", att.URL)
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	path, err := b.downloadAttachment(att)
	if err != nil {
		b.replyError(s, m, err)
		return
	}
	defer os.Remove(path)

	analysis, err := b.uploader.Upload(context.Background(), path)
	if err != nil {
		b.replyError(s, m, err)
		return
	}

	reply := "Resume received."
	if analysis.DetectedRole != "" {
		reply += fmt.Sprintf(" Detected role: **%s**.", analysis.DetectedRole)
	}
	if analysis.DetectedLocation != "" {
		reply += fmt.Sprintf(" Detected location: **%s**.", analysis.DetectedLocation)
	}
	s.ChannelMessageSend(m.ChannelID, reply)

	s.MessageReactionsRemoveAll(m.ChannelID, m.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	logger.Info("Done processing resume")
}

// downloadAttachment saves the attachment to a temp file keeping its
// original name, so extension validation sees what the user sent.
func (b *Bot) downloadAttachment(att *discordgo.MessageAttachment) (string, error) {
	resp, err := b.http.Get(att.URL)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 response code: %d", resp.StatusCode)
	}

	dir, err := os.MkdirTemp("", "resume-intake")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(att.Filename))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path, nil
}

func (b *Bot) replyError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("Processing error", "component", "bot", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}
