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
	_ = godotenv.Load()

	nameFlag := flag.String("name", "", "look up a single tag by exact name")
	namesFlag := flag.String("names", "", "space-separated tag names to look up")
	patternFlag := flag.String("pattern", "", "wildcard search (_ matches one char, % matches any run)")
	limitFlag := flag.Int("limit", 0, "number of tags to fetch (0 = mode default)")
	afterFlag := flag.Int("after-id", 0, "only tags with an id greater than this")
	orderFlag := flag.String("order", "", "sort field: date, count or name")
	dirFlag := flag.String("dir", "", "sort direction: asc or desc")
	authFlag := flag.String("auth", "", "credential blob (&api_key=...&user_id=...), overrides GELBOORU_AUTH")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tags",
	})

	client := newClient(*authFlag, logger)

	builder := api.Tags()
	if *limitFlag > 0 {
		builder.Limit(*limitFlag)
	}
	if *afterFlag > 0 {
		builder.AfterID(*afterFlag)
	}
	switch *orderFlag {
	case "":
	case "date":
		builder.OrderBy(api.OrderDate)
	case "count":
		builder.OrderBy(api.OrderCount)
	case "name":
		builder.OrderBy(api.OrderName)
	default:
		logger.Fatal("Bad order flag", "order", *orderFlag)
	}
	switch *dirFlag {
	case "":
	case "asc":
		builder.Ascending(true)
	case "desc":
		builder.Ascending(false)
	default:
		logger.Fatal("Bad dir flag", "dir", *dirFlag)
	}

	switch {
	case *nameFlag != "":
		tag, err := builder.Name(client, *nameFlag)
		if err != nil {
			logger.Fatal("Lookup failed", "error", err)
		}
		if tag == nil {
			logger.Info("No such tag", "name", *nameFlag)
			return
		}
		printTag(tag)

	case *namesFlag != "":
		query, err := builder.Names(client, strings.Fields(*namesFlag))
		if err != nil {
			logger.Fatal("Lookup failed", "error", err)
		}
		printTags(query)

	case *patternFlag != "":
		query, err := builder.Pattern(client, *patternFlag)
		if err != nil {
			logger.Fatal("Search failed", "error", err)
		}
		printTags(query)

	default:
		query, err := builder.Send(client)
		if err != nil {
			logger.Fatal("Listing failed", "error", err)
		}
		printTags(query)
	}
}

func printTags(query *models.TagQuery) {
	for i := range query.Tags {
		printTag(&query.Tags[i])
	}
}

func printTag(tag *models.Tag) {
	typeName := tag.TypeRaw
	if tagType, err := tag.Type(); err == nil {
		typeName = tagType.String()
	}

	fmt.Printf("Tag %-25s [%06d] count %7d of type %-10s ambiguous: %v\n",
		tag.Name, uint64(tag.ID), uint64(tag.Count), typeName, tag.Ambiguous())
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
