package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/service"
	"github.com/MKhiriev/go-snooze-client/models"
)

// App is the command dispatcher of the client binary. One invocation maps to
// one subcommand; the durable session store carries the login across
// invocations, so `login` once and `submit` later works as expected.
type App struct {
	services *service.ClientServices
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, log *logger.Logger) *App {
	app := &App{
		services: services,
		out:      os.Stdout,
		logger:   log,
	}

	// the service layer announces state changes; the app renders them as
	// status lines so every command gets its feedback from one place
	services.Events.Subscribe(app.renderEvent)

	return app
}

// Run restores any stored session, then dispatches args[0] as a subcommand.
func (a *App) Run(args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		a.printUsage()
		return errors.New("no command given")
	}

	// commands that establish a session themselves skip restoration
	cmd := args[0]
	if cmd != "signup" && cmd != "login" {
		if _, err := a.services.AuthService.RestoreSession(ctx); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
	}

	switch cmd {
	case "list":
		return a.runList(ctx)
	case "signup":
		return a.runSignup(ctx, args[1:])
	case "login":
		return a.runLogin(ctx, args[1:])
	case "whoami":
		return a.runWhoami()
	case "submit":
		return a.runSubmit(ctx, args[1:])
	case "favorite":
		return a.runFavorite(ctx, args[1:], true)
	case "unfavorite":
		return a.runFavorite(ctx, args[1:], false)
	case "favorites":
		return a.runFavorites()
	case "logout":
		return a.services.AuthService.Logout(ctx)
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) runList(ctx context.Context) error {
	feed, err := a.services.StoryService.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch stories: %w", err)
	}

	a.printStories(feed)
	return nil
}

func (a *App) runSignup(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: signup <username> <password> <name>")
	}

	if _, err := a.services.AuthService.Signup(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}

	return nil
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: login <username> <password>")
	}

	if _, err := a.services.AuthService.Login(ctx, args[0], args[1]); err != nil {
		return err
	}

	return nil
}

func (a *App) runWhoami() error {
	user, ok := a.services.Session.Snapshot()
	if !ok {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, user.Name)
	fmt.Fprintf(a.out, "favorites: %d, submitted: %d\n", len(user.Favorites), len(user.OwnStories))
	return nil
}

func (a *App) runSubmit(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: submit <title> <author> <url>")
	}

	draft := models.StoryDraft{Title: args[0], Author: args[1], URL: args[2]}

	created, err := a.services.StoryService.Create(ctx, draft)
	if err != nil {
		return err
	}

	// splice the accepted story into the visible feed without refetching
	a.services.StoryService.Prepend(created)
	return nil
}

func (a *App) runFavorite(ctx context.Context, args []string, favorited bool) error {
	if len(args) < 1 {
		return errors.New("usage: favorite|unfavorite <story-id>")
	}

	story, err := a.resolveStory(ctx, args[0])
	if err != nil {
		return err
	}

	if favorited {
		return a.services.FavoriteService.AddFavorite(ctx, story)
	}
	return a.services.FavoriteService.RemoveFavorite(ctx, story)
}

func (a *App) runFavorites() error {
	user, ok := a.services.Session.Snapshot()
	if !ok {
		return service.ErrNotAuthenticated
	}

	a.printStories(user.Favorites)
	return nil
}

// resolveStory finds the story behind ref, which is either a story ID or a
// 1-based position in the freshly fetched feed. An unknown ID is passed
// through as a bare story so unfavorite still reaches the server.
func (a *App) resolveStory(ctx context.Context, ref string) (models.Story, error) {
	feed := a.services.StoryService.Stories()
	if len(feed) == 0 {
		var err error
		if feed, err = a.services.StoryService.FetchAll(ctx); err != nil {
			return models.Story{}, fmt.Errorf("fetch stories: %w", err)
		}
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 1 || pos > len(feed) {
			return models.Story{}, fmt.Errorf("story position %d out of range 1..%d", pos, len(feed))
		}
		return feed[pos-1], nil
	}

	for _, story := range feed {
		if story.StoryID == ref {
			return story, nil
		}
	}

	return models.Story{StoryID: ref}, nil
}

func (a *App) printStories(stories []models.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(a.out, "no stories")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	for i, story := range stories {
		fmt.Fprintf(w, "%d.\t%s\t(%s)\tby %s\t[%s]\n",
			i+1, story.Title, story.Hostname(), story.Author, story.Username)
	}
	w.Flush()
}

func (a *App) renderEvent(evt service.Event) {
	switch evt.Kind {
	case service.EventSessionRestored:
		fmt.Fprintf(a.out, "welcome back, %s\n", evt.Username)
	case service.EventLoggedIn:
		fmt.Fprintf(a.out, "logged in as %s\n", evt.Username)
	case service.EventSignedUp:
		fmt.Fprintf(a.out, "account %s created, you are logged in\n", evt.Username)
	case service.EventStoryCreated:
		fmt.Fprintf(a.out, "story %s submitted\n", evt.StoryID)
	case service.EventFavoriteToggled:
		if evt.Favorited {
			fmt.Fprintf(a.out, "story %s added to favorites\n", evt.StoryID)
		} else {
			fmt.Fprintf(a.out, "story %s removed from favorites\n", evt.StoryID)
		}
	case service.EventLoggedOut:
		fmt.Fprintln(a.out, "logged out")
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, `usage: snooze <command> [args]

commands:
  list                              show the story feed
  signup <username> <password> <name>
  login <username> <password>
  whoami                            show the current account
  submit <title> <author> <url>     post a new story
  favorite <story-id|position>      mark a story as favorite
  unfavorite <story-id|position>    remove a favorite
  favorites                         list your favorite stories
  logout                            forget the stored session`)
}
