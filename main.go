package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdk2588/pixelpush/font"
	"github.com/jdk2588/pixelpush/github"
	"github.com/jdk2588/pixelpush/gitrepo"
	"github.com/jdk2588/pixelpush/plan"
)

const glyphGap = 1

type phase int

const (
	phaseConfirm phase = iota
	phaseCommitting
	phaseDone
	phaseFailed
	phaseAborted
)

type model struct {
	styles   styleSet
	plan     plan.Plan
	repo     *gitrepo.Repo
	message  string
	perPixel int

	dates []time.Time

	// activity holds existing contribution counts per date, when the
	// GitHub lookup succeeded. Nil means unknown.
	activity map[string]int
	checking bool

	phase phase
	next  int
	err   error
}

func initialModel(p plan.Plan, repo *gitrepo.Repo, message string, perPixel int) model {
	return model{
		styles:   newStyles(),
		plan:     p,
		repo:     repo,
		message:  message,
		perPixel: perPixel,
		dates:    p.Dates(),
		checking: github.TokenFromEnv() != "",
	}
}

func (m model) total() int {
	return len(m.dates) * m.perPixel
}

type activityMsg struct {
	counts map[string]int
	err    error
}

func checkActivity(p plan.Plan) tea.Cmd {
	return func() tea.Msg {
		token := github.TokenFromEnv()
		if token == "" {
			return activityMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		client := github.NewClient(ctx, token)
		counts, err := client.ContributionCounts(ctx, p.Origin, p.End().AddDate(0, 0, 6))
		return activityMsg{counts: counts, err: err}
	}
}

type commitDoneMsg struct {
	index int
	err   error
}

func (m model) commitCmd(index int) tea.Cmd {
	date := m.dates[index/m.perPixel]
	message := fmt.Sprintf("Pixel for %s %s (part %d/%d)",
		m.message, date.Format(plan.DateFormat), index%m.perPixel+1, m.perPixel)
	repo := m.repo
	return func() tea.Msg {
		err := repo.CommitEmpty(context.Background(), date, message)
		return commitDoneMsg{index: index, err: err}
	}
}

func (m model) Init() tea.Cmd {
	if m.checking {
		return checkActivity(m.plan)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.phase {
		case phaseConfirm:
			switch msg.String() {
			case "y", "Y", "enter":
				m.phase = phaseCommitting
				return m, m.commitCmd(0)
			case "q", "n", "N", "esc", "ctrl+c":
				m.phase = phaseAborted
				return m, tea.Quit
			}
		case phaseCommitting:
			if msg.String() == "ctrl+c" {
				m.phase = phaseAborted
				return m, tea.Quit
			}
		}
	case activityMsg:
		m.checking = false
		// Lookup failures degrade to no warning; the plan stands.
		if msg.err == nil {
			m.activity = msg.counts
		}
		return m, nil
	case commitDoneMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.err = msg.err
			return m, tea.Quit
		}
		m.next = msg.index + 1
		if m.next >= m.total() {
			m.phase = phaseDone
			return m, tea.Quit
		}
		return m, m.commitCmd(m.next)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.header.Render(fmt.Sprintf("Drawing %q on the contribution graph", m.message)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d weeks wide, %d pixels, %d commits per pixel, %d commits total",
		m.plan.Bitmap.Width(), len(m.dates), m.perPixel, m.total())
	b.WriteString(m.styles.footer.Render(summary))
	b.WriteString("\n")
	span := fmt.Sprintf("Start Sunday: %s    Last week starts: %s",
		m.plan.Origin.Format(plan.DateFormat), m.plan.End().Format(plan.DateFormat))
	b.WriteString(m.styles.footer.Render(span))
	b.WriteString("\n")

	if m.plan.Snapped {
		warn := fmt.Sprintf("Note: %s is not a Sunday, snapped back to %s",
			m.plan.Requested.Format(plan.DateFormat), m.plan.Origin.Format(plan.DateFormat))
		b.WriteString(m.styles.warn.Render(warn))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.checking {
		b.WriteString(m.styles.help.Render("⟳ Checking existing contribution activity..."))
		b.WriteString("\n")
	} else if clashes := m.clashCount(); clashes > 0 {
		warn := fmt.Sprintf("%d planned dates already show contribution activity (marked above)", clashes)
		b.WriteString(m.styles.warn.Render(warn))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.phase {
	case phaseConfirm:
		prompt := fmt.Sprintf("Create %d commits on the current branch in %s?", m.total(), m.repo.Dir())
		b.WriteString(m.styles.prompt.Render(prompt))
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("y/enter: Create commits  q/esc: Abort"))
	case phaseCommitting:
		date := m.dates[m.next/m.perPixel]
		progress := fmt.Sprintf(" Committing %d/%d (%s) ", m.next+1, m.total(), date.Format(plan.DateFormat))
		b.WriteString(m.styles.progress.Render(progress))
	case phaseDone:
		b.WriteString(m.styles.prompt.Render("All commits created."))
	case phaseFailed:
		b.WriteString(m.styles.warn.Render(fmt.Sprintf("Failed: %v", m.err)))
	case phaseAborted:
		b.WriteString(m.styles.help.Render("Aborted."))
	}
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the bitmap the way the contribution graph will show
// it, one cell per day, weeks as columns.
func (m model) renderGrid() string {
	var b strings.Builder
	for row := 0; row < font.Rows; row++ {
		for col := 0; col < m.plan.Bitmap.Width(); col++ {
			date := m.plan.Origin.AddDate(0, 0, 7*col+row)
			busy := m.activity[date.Format(plan.DateFormat)] > 0
			switch {
			case m.plan.Bitmap.On(row, col) && busy:
				b.WriteString(m.styles.cellClash.Render("■"))
			case m.plan.Bitmap.On(row, col):
				b.WriteString(m.styles.cellOn.Render("■"))
			case busy:
				b.WriteString(m.styles.cellBusy.Render("▫"))
			default:
				b.WriteString(m.styles.cellOff.Render("·"))
			}
			if col < m.plan.Bitmap.Width()-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) clashCount() int {
	if m.activity == nil {
		return 0
	}
	n := 0
	for _, date := range m.dates {
		if m.activity[date.Format(plan.DateFormat)] > 0 {
			n++
		}
	}
	return n
}

func printDryRun(p plan.Plan, message string, perPixel int) {
	dates := p.Dates()
	fmt.Printf("Message %q => bitmap width %d weeks, height %d days.\n", message, p.Bitmap.Width(), font.Rows)
	fmt.Printf("Start Sunday (leftmost column): %s\n", p.Origin.Format(plan.DateFormat))
	fmt.Printf("End week (rightmost) starts on: %s\n", p.End().Format(plan.DateFormat))
	if p.Snapped {
		fmt.Printf("Note: %s is not a Sunday, snapped back to %s\n",
			p.Requested.Format(plan.DateFormat), p.Origin.Format(plan.DateFormat))
	}
	fmt.Printf("Total 'on' pixels: %d. Commits per pixel: %d. Total commits: %d\n",
		len(dates), perPixel, len(dates)*perPixel)
	for _, d := range dates {
		fmt.Println(d.Format(plan.DateFormat))
	}
	fmt.Println("Done (dry run).")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	config := loadAppConfig()

	message := flag.String("message", config.Message, "text to draw on the contribution graph")
	perPixel := flag.Int("commits-per-pixel", config.CommitsPerPixel, "commits per on pixel; more commits, darker square")
	startSunday := flag.String("start-sunday", "", "explicit start Sunday (YYYY-MM-DD); default right-aligns the message to the current week")
	dryRun := flag.Bool("dry-run", false, "list the computed dates without creating commits")
	repoDir := flag.String("repo", ".", "git working tree to commit in")
	flag.Parse()

	if *perPixel < 1 {
		fatal("commits-per-pixel must be at least 1")
	}

	bitmap, err := font.Render(*message, glyphGap)
	if err != nil {
		fatal("cannot render message: %v", err)
	}

	opts := plan.Options{Now: time.Now().UTC()}
	if *startSunday != "" {
		start, err := time.Parse(plan.DateFormat, *startSunday)
		if err != nil {
			fatal("invalid -start-sunday %q: use YYYY-MM-DD", *startSunday)
		}
		opts.Start = start
	}
	p := plan.New(bitmap, opts)

	if *dryRun {
		printDryRun(p, *message, *perPixel)
		return
	}

	repo, err := gitrepo.Open(context.Background(), *repoDir)
	if err != nil {
		fatal("%v", err)
	}

	final, err := tea.NewProgram(initialModel(p, repo, *message, *perPixel)).Run()
	if err != nil {
		fatal("%v", err)
	}

	switch m := final.(model); m.phase {
	case phaseDone:
		fmt.Println("All commits created. Push the branch to see the graph update.")
	case phaseFailed:
		fatal("%v (remaining commits skipped)", m.err)
	default:
		fmt.Println("Aborted, no commits created.")
	}
}

type styleSet struct {
	header    lipgloss.Style
	cellOn    lipgloss.Style
	cellOff   lipgloss.Style
	cellBusy  lipgloss.Style
	cellClash lipgloss.Style
	footer    lipgloss.Style
	help      lipgloss.Style
	warn      lipgloss.Style
	prompt    lipgloss.Style
	progress  lipgloss.Style
}

func newStyles() styleSet {
	base := lipgloss.NewStyle().Padding(0).Margin(0)

	return styleSet{
		header:    base.Copy().Foreground(lipgloss.Color("213")).Bold(true),
		cellOn:    base.Copy().Foreground(lipgloss.Color("40")).Bold(true),
		cellOff:   base.Copy().Foreground(lipgloss.Color("238")),
		cellBusy:  base.Copy().Foreground(lipgloss.Color("214")),
		cellClash: base.Copy().Foreground(lipgloss.Color("214")).Bold(true),
		footer:    base.Copy().Foreground(lipgloss.Color("248")),
		help:      base.Copy().Foreground(lipgloss.Color("244")),
		warn:      base.Copy().Foreground(lipgloss.Color("203")),
		prompt:    base.Copy().Foreground(lipgloss.Color("230")).Bold(true),
		progress:  base.Copy().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("57")).Bold(true),
	}
}
