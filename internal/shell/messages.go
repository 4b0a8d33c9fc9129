package shell

import (
	"fmt"
	"strings"

	"github.com/glabrego/connoisseur/internal/journal"
)

const (
	msgWelcome            = "Welcome to Connoisseur, your personal food and media journal!\nYou are in review mode. Type 'help' to see what you can do."
	msgExit               = "Thank you for using Connoisseur. See you next time!"
	msgReviewMode         = "You are now in review mode"
	msgRecommendationMode = "You are now in recommendation mode"
	msgInvalidCommand     = "Invalid command. Type 'help' to see the list of commands."
	msgInvalidParameters  = "Invalid command. Please do not enter extra parameters or less parameters than required."
	msgInvalidHelpTopic   = "There is no help for that topic. Type 'help' to see all commands."
	msgAborted            = "Cancelled, nothing was changed."
	msgSaveFailed         = "Sorry, your journal could not be saved (%s). Nothing was lost; type 'exit' to try again."
	msgNoReviews          = "You have no reviews yet. Add one with 'add quick' or 'add long'."
	msgNoRecommendations  = "You have no recommendations yet. Add one with 'add'."
	msgNoMatches          = "No entries match your search."
)

var (
	msgInvalidSortType    = "Invalid sort type. Choose one of: " + joinSortMethods() + "."
	msgInvalidDisplayType = "Invalid display type. Choose either stars or asterisks."
)

func joinSortMethods() string {
	methods := journal.SortMethods()
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

var helpTopics = map[string]string{
	"sort": "sort <type>: orders your reviews and remembers the order.\n" +
		"  Types: " + joinSortMethods() + ".\n" +
		"  rating lists the highest first; rating-asc the lowest first. Ties are broken by title.",
	"list": "list [type]: shows every entry in the current mode.\n" +
		"  In review mode an optional sort type reorders the list first and becomes the new default.",
	"edit": "edit <title>: changes the fields of an entry. Press enter to keep a value.",
	"add": "add [quick|long]: creates an entry in the current mode.\n" +
		"  Review mode: quick asks for title, category and rating; long also asks for a description.\n" +
		"  Recommendation mode: asks for title, category, who recommended it and a description.",
	"delete":  "delete <title>: removes the entry with that title from the current mode's list.",
	"view":    "view <title>: shows a review in full. Review mode only.",
	"display": "display <stars|asterisks>: changes how ratings are drawn. Review mode only.",
	"review":  "review: switches to review mode, for things you have already tried.",
	"reco":    "reco: switches to recommendation mode, for things you want to try.",
	"done":    "done <title>: turns a recommendation into a review, asking for its rating. Recommendation mode only.",
	"find":    "find <keyword>: searches titles, categories and descriptions in the current mode.",
	"exit":    "exit or bye: saves your journal and quits.",
}

func init() {
	helpTopics["new"] = helpTopics["add"]
	helpTopics["bye"] = helpTopics["exit"]
}

func generalHelp(mode Mode) string {
	return fmt.Sprintf(`You are in %s mode. Commands:
  review | reco               switch mode
  list [sort type]            list entries
  add [quick|long]            add an entry
  edit <title>                edit an entry
  delete <title>              delete an entry
  find <keyword>              search entries
  view <title>                show a review (review mode)
  sort <type>                 sort reviews (review mode)
  display <stars|asterisks>   change rating display (review mode)
  done <title>                convert a recommendation into a review (recommendation mode)
  help [command]              show help
  exit | bye                  save and quit`, mode)
}
