// Package corpus defines the fixed layout of the core phrase corpus: the
// eight conversational-intent categories and the files that back them.
package corpus

import "encoding/json"

// Category identifies one conversational-intent phrase class.
type Category int

const (
	// Request covers phrases that ask someone to do something.
	Request Category = iota

	// Reject covers refusal and decline phrases.
	Reject

	// Direct covers imperative, instruction-giving phrases.
	Direct

	// Accept covers agreement and confirmation phrases.
	Accept

	// Interact covers conversational back-and-forth phrases.
	Interact

	// Express covers emotion and opinion phrases.
	Express

	// Comment covers remark and observation phrases.
	Comment

	// Ask covers question-forming phrases.
	Ask
)

func (c Category) String() string {
	switch c {
	case Request:
		return "request"
	case Reject:
		return "reject"
	case Direct:
		return "direct"
	case Accept:
		return "accept"
	case Interact:
		return "interact"
	case Express:
		return "express"
	case Comment:
		return "comment"
	case Ask:
		return "ask"
	default:
		return "unknown"
	}
}

// FileName returns the on-disk name of the phrase list backing this category,
// e.g. "core-phrase-list-01-request.json".
func (c Category) FileName() string {
	return fileNames[c]
}

// OutputFile is the default name of the merged corpus artifact.
const OutputFile = "core-phrase-list-all.json"

// Categories lists every category in corpus order. Position i of the merged
// array always corresponds to Categories[i].
var Categories = [8]Category{
	Request, Reject, Direct, Accept, Interact, Express, Comment, Ask,
}

var fileNames = [8]string{
	"core-phrase-list-01-request.json",
	"core-phrase-list-02-reject.json",
	"core-phrase-list-03-direct.json",
	"core-phrase-list-04-accept.json",
	"core-phrase-list-05-interact.json",
	"core-phrase-list-06-express.json",
	"core-phrase-list-07-comment.json",
	"core-phrase-list-08-ask.json",
}

// Manifest returns the ordered list of input filenames. The list is fixed at
// build time; merge output order follows it exactly.
func Manifest() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, c.FileName())
	}
	return names
}

// Document is one parsed input file, carried verbatim. Any valid JSON value
// is accepted; the expected shape (an array of phrase strings) is not
// enforced.
type Document = json.RawMessage
