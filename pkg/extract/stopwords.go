package extract

// stopWords is the fixed list of function words and conversational filler
// excluded from theme tokenization. Loaded once into a set at init.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
}

var stopWordList = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "any", "can",
	"had", "her", "was", "one", "our", "out", "has", "have", "him", "his",
	"how", "its", "may", "new", "now", "old", "see", "two", "way", "who",
	"did", "get", "got", "let", "say", "she", "too", "use", "that", "with",
	"this", "will", "your", "from", "they", "know", "want", "been", "good",
	"much", "some", "time", "very", "when", "come", "here", "just", "like",
	"long", "make", "many", "more", "most", "only", "over", "such", "take",
	"than", "them", "well", "were", "what", "would", "could", "should",
	"about", "after", "again", "also", "back", "because", "before", "being",
	"between", "both", "down", "each", "even", "first", "into", "other",
	"same", "then", "there", "these", "things", "think", "those", "through",
	"under", "where", "which", "while", "need", "does", "doing", "going",
	"really", "something", "someone", "still", "using", "work",
	// Conversational filler common in chat transcripts.
	"please", "thanks", "thank", "hello", "okay", "yeah", "yes", "sure",
	"help", "tell", "give", "show", "explain", "write", "made", "making",
}
