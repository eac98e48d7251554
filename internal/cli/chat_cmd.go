package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"esgcompass/internal/advisor"
	"esgcompass/internal/cli/formatter"
	"esgcompass/internal/router"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// exitWords end a conversation early from the prompt.
var exitWords = map[string]bool{
	"quit": true, "exit": true, "/quit": true, "/exit": true, "/q": true,
}

func newChatCmd(app *App) *cobra.Command {
	var profileName string
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Discover ESG preferences through conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTaxonomy(app); err != nil {
				return err
			}
			sess := app.Discovery.StartSession()
			if sess.Complete() {
				return fmt.Errorf("taxonomy has no conversable topics")
			}

			interactive := !plain &&
				isatty.IsTerminal(os.Stdin.Fd()) &&
				isatty.IsTerminal(os.Stdout.Fd())

			var err error
			if interactive {
				err = runChatTUI(app, sess)
			} else {
				err = runChatPlain(cmd, app, sess)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatReport(sessionReport(app, sess)))

			name := profileName
			if name == "" && interactive && sess.Priorities.Len() > 0 {
				name = promptProfileName()
			}
			if name == "" {
				return nil
			}
			if err := requireProfiles(app); err != nil {
				return err
			}
			if err := saveProfile(cmd.Context(), app, name, sess); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved profile %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "Save the captured priorities under this profile name")
	cmd.Flags().BoolVar(&plain, "plain", false, "Line-based mode without the terminal UI")

	return cmd
}

// runChatPlain drives the conversation over plain stdin/stdout lines.
// Used for piped input and as the no-TTY fallback.
func runChatPlain(cmd *cobra.Command, app *App, sess *router.Session) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	welcome, question := app.Discovery.Opening(sess)
	fmt.Fprintln(out, welcome)
	fmt.Fprintln(out)
	fmt.Fprintln(out, question)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for !sess.Complete() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitWords[strings.ToLower(line)] {
			return nil
		}

		stopSpinner := thinkingSpinner(app)
		turn := app.Discovery.Turn(ctx, sess, line)
		stopSpinner()
		fmt.Fprintln(out, turn.Reply)
		for _, note := range captureNotes(turn) {
			fmt.Fprintln(out, note)
		}
		if turn.NextQuestion != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, turn.NextQuestion)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, advisor.ClosingMessage)
	return nil
}

// thinkingSpinner shows a waiting indicator while a model call is in
// flight. No-op when replies are scripted or output is not a terminal.
func thinkingSpinner(app *App) func() {
	if app.Client == nil || !isatty.IsTerminal(os.Stdout.Fd()) {
		return func() {}
	}
	return formatter.StartSpinner("Thinking...")
}

// captureNotes renders one dim line per field captured this turn.
func captureNotes(turn advisor.TurnOutput) []string {
	captured := make(map[string]bool, len(turn.Result.MatchedFieldIDs))
	for _, id := range turn.Result.MatchedFieldIDs {
		captured[id] = true
	}
	var notes []string
	for _, m := range turn.Result.Matches {
		if !captured[m.Field.FieldID] {
			continue
		}
		notes = append(notes, formatter.Dim(
			fmt.Sprintf("  noted: %s [%s]", m.Field.FieldName, m.Field.FieldID)))
	}
	return notes
}

// promptProfileName asks whether to keep the session's priorities and
// under what name. Empty means discard.
func promptProfileName() string {
	var save bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Save this preference profile?").
			Value(&save),
	)).WithTheme(compassHuhTheme()).WithShowHelp(false)
	if err := confirm.Run(); err != nil || !save {
		return ""
	}

	var name string
	input := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Profile name").
			Placeholder("green-fund").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
	)).WithTheme(compassHuhTheme()).WithShowHelp(false)
	if err := input.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// compassHuhTheme returns a custom huh theme using the Gruvbox palette.
func compassHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
