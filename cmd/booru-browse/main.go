package main

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/snowkase/gelbooru-go/api"
	"github.com/snowkase/gelbooru-go/internal/ui"
	"github.com/snowkase/gelbooru-go/models"
)

func main() {
	_ = godotenv.Load()

	authFlag := flag.String("auth", "", "credential blob (&api_key=...&user_id=...), overrides GELBOORU_AUTH")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "browse",
	})

	client := newClient(*authFlag, logger)

	criteria, err := promptCriteria()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return
		}
		logger.Fatal("Prompt failed", "error", err)
	}

	if err := ui.RunBrowser(client, logger, criteria); err != nil {
		logger.Fatal("Browser failed", "error", err)
	}
}

// promptCriteria collects the search form before the browser opens.
func promptCriteria() (ui.SearchCriteria, error) {
	var (
		tagsInput    string
		ratingChoice string
		limitInput   = "25"
		random       bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tags").
				Description("Space-separated tags; leave empty for the default feed").
				Value(&tagsInput),
			huh.NewSelect[string]().
				Title("Rating").
				Options(
					huh.NewOption("any", ""),
					huh.NewOption("safe", "safe"),
					huh.NewOption("questionable", "questionable"),
					huh.NewOption("explicit", "explicit"),
				).
				Value(&ratingChoice),
			huh.NewInput().
				Title("Limit").
				Value(&limitInput).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return errors.New("enter a positive number")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Randomize order?").
				Value(&random),
		),
	)

	if err := form.Run(); err != nil {
		return ui.SearchCriteria{}, err
	}

	limit, _ := strconv.Atoi(limitInput)
	criteria := ui.SearchCriteria{
		Tags:   strings.Fields(tagsInput),
		Limit:  limit,
		Random: random,
	}
	if ratingChoice != "" {
		rating, err := models.ParseRating(ratingChoice)
		if err != nil {
			return ui.SearchCriteria{}, err
		}
		criteria.Rating = &rating
	}

	return criteria, nil
}

func newClient(authBlob string, logger *log.Logger) *api.Client {
	if authBlob == "" {
		authBlob = os.Getenv("GELBOORU_AUTH")
	}
	if authBlob == "" {
		return api.NewClient().WithLogger(logger)
	}

	auth, err := api.ParseAuth(authBlob)
	if err != nil {
		logger.Fatal("Bad credential blob", "error", err)
	}
	return api.NewClientWithAuth(*auth).WithLogger(logger)
}
