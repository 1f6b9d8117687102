package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/simfolio/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string { return "topic" }
func (*topicCmd) Synopsis() string {
	return "read the manual: simulation rules, overlays, metrics, configuration"
}
func (*topicCmd) Usage() string {
	return `sim topic [-list] [<topic>...]

  Prints manual topics. Without a topic, prints the overview and the list of
  topics. '*' prints every topic, one after the other.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "Print the topic names only, one per line.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing manual topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(strings.Join(names, "\n"))
		return subcommands.ExitSuccess
	}

	md, err := manual(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// manual returns the markdown of the requested topics, the overview when none is.
func manual(topics []string) (string, error) {
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	for i, t := range topics {
		topics[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return docs.Topics(topics...)
}
