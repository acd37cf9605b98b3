package textnorm

// StopWords contains common English function words excluded from scoring.
// The set is fixed; callers must not mutate it.
var StopWords = map[string]bool{
	"a": true, "about": true, "after": true, "all": true, "am": true,
	"an": true, "and": true, "any": true, "are": true, "as": true,
	"at": true, "be": true, "been": true, "but": true, "by": true,
	"can": true, "did": true, "do": true, "does": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "him": true, "his": true, "how": true, "if": true,
	"in": true, "into": true, "is": true, "it": true, "its": true,
	"me": true, "more": true, "my": true, "no": true, "not": true,
	"of": true, "on": true, "or": true, "other": true, "our": true,
	"she": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"to": true, "was": true, "we": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "who": true, "will": true,
	"with": true, "you": true, "your": true,
}
