package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about conversion runs
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileChangeType represents the type of change made to a target file
type FileChangeType int

const (
	FileAdded FileChangeType = iota
	FileUpdated
	FileUnchanged
	FileError
)

// 🖼️ FileChange represents a change to a target file
type FileChange struct {
	Type        FileChangeType
	Path        string
	Description string
	Error       error
}

// 🔀 ChangeTypeFor maps a tracked file status onto the change type
// shown to the user
func ChangeTypeFor(s FileStatus) FileChangeType {
	switch s {
	case StatusNew:
		return FileAdded
	case StatusModified:
		return FileUpdated
	case StatusFailed:
		return FileError
	default:
		return FileUnchanged
	}
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange logs a target file change with appropriate formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileAdded:
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case FileUpdated:
		action = "Updated"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
	case FileUnchanged:
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case FileError:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, change.Path)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	printer.Println(msg)
	if change.Error != nil {
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg)
	} else {
		u.log.Info().Msg(msg)
	}
}

// 📦 LogJobStart logs the start of a conversion job
func (u *UserLogger) LogJobStart(name, source string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Printf("Converting %s (%s)\n", name, source)
	u.log.Info().Str("job", name).Str("source", source).Msg("converting")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}

// 📊 LogSummary prints the final successful/skipped partition, each
// group in the configured job order
func (u *UserLogger) LogSummary(successful []string, skipped []SkippedJob) {
	pterm.DefaultSection.Println("Summary")

	if len(successful) > 0 {
		pterm.Success.Printf("Successful (%d):\n", len(successful))
		for _, name := range successful {
			pterm.Success.WithPrefix(pterm.Prefix{Text: "  ✓"}).Println(name)
		}
	}

	if len(skipped) > 0 {
		pterm.Warning.Printf("Skipped (%d):\n", len(skipped))
		for _, job := range skipped {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "  -"}).Printf("%s: %s\n", job.Name, job.Reason)
		}
	}

	u.log.Info().
		Int("successful", len(successful)).
		Int("skipped", len(skipped)).
		Msg("run complete")
}

// 📋 SkippedJob names a job that did not complete and why
type SkippedJob struct {
	Name   string
	Reason string
}
