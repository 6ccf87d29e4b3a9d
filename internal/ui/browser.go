package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/snowkase/gelbooru-go/api"
	"github.com/snowkase/gelbooru-go/models"
)

// SearchCriteria is the post search the browser runs on startup and on
// refresh.
type SearchCriteria struct {
	Tags    []string
	RawTags string
	Rating  *models.Rating
	Limit   int
	Random  bool
}

func (c SearchCriteria) describe() string {
	parts := make([]string, 0, 3)
	if c.Rating != nil {
		parts = append(parts, "rating:"+c.Rating.String())
	}
	parts = append(parts, c.Tags...)
	if c.RawTags != "" {
		parts = append(parts, c.RawTags)
	}
	if len(parts) == 0 {
		return "(unfiltered)"
	}
	return strings.Join(parts, " ")
}

type browserViewMode int

const (
	browserViewTable browserViewMode = iota
	browserViewDetail
)

// Messages
type postsLoadedMsg struct {
	query *models.PostQuery
	err   error
}

// BrowserModel is the TUI model for browsing post search results.
type BrowserModel struct {
	client   *api.Client
	logger   *log.Logger
	criteria SearchCriteria

	table   table.Model
	spinner spinner.Model

	posts []models.Post
	total uint

	viewMode browserViewMode
	fetching bool
	err      error
	quitting bool
}

// NewBrowserModel creates a browser that fetches criteria on Init.
func NewBrowserModel(client *api.Client, logger *log.Logger, criteria SearchCriteria) BrowserModel {
	columns := []table.Column{
		{Title: "ID", Width: ColWidthID},
		{Title: "Rating", Width: ColWidthRating},
		{Title: "Score", Width: ColWidthScore},
		{Title: "Size", Width: ColWidthSize},
		{Title: "Owner", Width: ColWidthOwner},
		{Title: "Tags", Width: DefaultWidth - ColWidthID - ColWidthRating - ColWidthScore - ColWidthSize - ColWidthOwner - 12},
	}

	return BrowserModel{
		client:   client,
		logger:   logger,
		criteria: criteria,
		table:    newResultsTable(columns),
		spinner:  NewAppSpinner(),
		fetching: true,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchPosts())
}

func (m BrowserModel) fetchPosts() tea.Cmd {
	client := m.client
	criteria := m.criteria
	return func() tea.Msg {
		builder := api.Posts().Tags(criteria.Tags...).Random(criteria.Random)
		if criteria.Limit > 0 {
			builder.Limit(criteria.Limit)
		}
		if criteria.Rating != nil {
			builder.Rating(*criteria.Rating)
		}
		if criteria.RawTags != "" {
			builder.RawTags(criteria.RawTags)
		}

		query, err := builder.Send(client)
		return postsLoadedMsg{query: query, err: err}
	}
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.viewMode == browserViewDetail {
				m.viewMode = browserViewTable
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.viewMode == browserViewTable && len(m.posts) > 0 {
				m.viewMode = browserViewDetail
			}
			return m, nil

		case "r":
			if !m.fetching {
				m.fetching = true
				m.err = nil
				m.viewMode = browserViewTable
				return m, tea.Batch(m.spinner.Tick, m.fetchPosts())
			}
		}

	case spinner.TickMsg:
		if m.fetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case postsLoadedMsg:
		m.fetching = false
		if msg.err != nil {
			m.err = msg.err
			if m.logger != nil {
				m.logger.Error("Search failed", "error", msg.err)
			}
			return m, nil
		}
		m.posts = msg.query.Posts
		m.total = msg.query.Attributes.Count
		m.table.SetRows(m.rows())
		m.table.GotoTop()
		return m, nil
	}

	if m.viewMode == browserViewTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowserModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.posts))
	for i := range m.posts {
		post := &m.posts[i]

		ratingName := post.RatingRaw
		if rating, err := post.Rating(); err == nil {
			ratingName = rating.String()
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(post.ID, 10),
			ratingName,
			strconv.Itoa(post.Score),
			fmt.Sprintf("%dx%d", post.Width, post.Height),
			post.Owner,
			post.Tags,
		})
	}
	return rows
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("gelbooru search: " + m.criteria.describe())

	if m.fetching {
		return fmt.Sprintf("%s\n\n %s Fetching posts...\n", title, m.spinner.View())
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s\n\n%s\n",
			title,
			errorStyle.Render("Error: "+m.err.Error()),
			statusStyle.Render("r: retry • q: quit"),
		)
	}

	if m.viewMode == browserViewDetail {
		return fmt.Sprintf("%s\n%s\n%s\n",
			title,
			m.detailView(),
			statusStyle.Render("esc: back • q: quit"),
		)
	}

	status := fmt.Sprintf("%d of %d matching posts", len(m.posts), m.total)
	return fmt.Sprintf("%s\n%s\n%s\n%s\n",
		title,
		borderStyle.Render(m.table.View()),
		statusStyle.Render(status),
		statusStyle.Render("enter: details • r: refresh • q: quit"),
	)
}

func (m BrowserModel) detailView() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.posts) {
		return statusStyle.Render("nothing selected")
	}
	post := &m.posts[cursor]

	ratingName := post.RatingRaw
	if rating, err := post.Rating(); err == nil {
		ratingName = rating.String()
	}

	created := post.CreatedAtRaw
	if at, err := post.CreatedAt(); err == nil {
		created = at.Format("2006-01-02 15:04:05 MST")
	}

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label) + " " + value + "\n")
	}

	row("ID", strconv.FormatInt(post.ID, 10))
	row("Rating", ratingName)
	row("Score", strconv.Itoa(post.Score))
	row("Owner", post.Owner)
	row("Created", created)
	row("Size", fmt.Sprintf("%dx%d", post.Width, post.Height))
	if post.ParentID != nil {
		row("Parent", strconv.FormatInt(*post.ParentID, 10))
	}
	if post.Locked() {
		row("Locked", "yes")
	}
	row("File", post.FileURL)
	if post.Source != "" {
		row("Source", post.Source)
	}
	row("Tags", strings.Join(post.TagList(), ", "))

	return borderStyle.Render(b.String())
}

// RunBrowser fetches the criteria and opens the interactive results view.
func RunBrowser(client *api.Client, logger *log.Logger, criteria SearchCriteria) error {
	model := NewBrowserModel(client, logger, criteria)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
