package feedlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hrportal/internal/feed"
)

type Item struct {
	Post feed.PostView
}

func (i Item) Title() string {
	heart := "♡"
	if i.Post.Liked {
		heart = "♥"
	}
	return fmt.Sprintf("%s %s · %s", heart, i.Post.Author, i.Post.Age)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d likes | %d comments | %s", i.Post.Likes, i.Post.Comments, i.Post.Content)
	if i.Post.Type == "Event" {
		desc = "[event] " + desc
	}
	return desc
}

func (i Item) FilterValue() string { return i.Post.Author + " " + i.Post.Content }

type Model struct {
	list list.Model
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Feed"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the main model
	return Model{list: l}
}

// SetPosts replaces the items and keeps the cursor on the same index
func (m *Model) SetPosts(posts []feed.PostView) {
	items := make([]list.Item, len(posts))
	for i, p := range posts {
		items[i] = Item{Post: p}
	}
	m.list.SetItems(items)
}

// Selected returns the post under the cursor
func (m Model) Selected() (feed.PostView, bool) {
	it, ok := m.list.SelectedItem().(Item)
	if !ok {
		return feed.PostView{}, false
	}
	return it.Post, true
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether key presses belong to the filter input
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No posts yet."
	}
	return m.list.View()
}
