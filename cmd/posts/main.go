package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/snowkase/gelbooru-go/api"
	"github.com/snowkase/gelbooru-go/models"
)

func main() {
	// Load .env if present (silently ignore if not found)
	_ = godotenv.Load()

	tagsFlag := flag.String("tags", "", "space-separated tags to search for")
	ratingFlag := flag.String("rating", "", "filter by rating: safe, questionable or explicit")
	limitFlag := flag.Int("limit", 10, "number of posts to fetch")
	randomFlag := flag.Bool("random", false, "randomize post order")
	rawFlag := flag.String("raw", "", "raw expression appended unchecked to the tag search")
	authFlag := flag.String("auth", "", "credential blob (&api_key=...&user_id=...), overrides GELBOORU_AUTH")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "posts",
	})

	client := newClient(*authFlag, logger)

	builder := api.Posts().
		Limit(*limitFlag).
		Random(*randomFlag)
	if *tagsFlag != "" {
		builder.Tags(strings.Fields(*tagsFlag)...)
	}
	if *rawFlag != "" {
		builder.RawTags(*rawFlag)
	}
	if *ratingFlag != "" {
		rating, err := models.ParseRating(*ratingFlag)
		if err != nil {
			logger.Fatal("Bad rating flag", "rating", *ratingFlag)
		}
		builder.Rating(rating)
	}

	query, err := builder.Send(client)
	if err != nil {
		logger.Fatal("Search failed", "error", err)
	}

	logger.Info("Search done", "returned", len(query.Posts), "total", query.Attributes.Count)

	for i := range query.Posts {
		post := &query.Posts[i]

		created := post.CreatedAtRaw
		if at, err := post.CreatedAt(); err == nil {
			created = at.Format("2006-01-02 15:04:05 -0700")
		}

		fmt.Printf("Post %d created at %s by %s [%s]\n",
			post.ID, created, post.Owner, post.FileURL)
	}
}

// newClient builds a client from the -auth flag or the GELBOORU_AUTH env
// var, falling back to anonymous access.
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
