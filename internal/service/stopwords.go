package service

// englishStopWords is the fixed English stop-word list applied before
// vectorization. Keeping it static preserves scoring stability across
// releases.
var englishStopWords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "across", "after", "afterwards", "again", "against",
		"all", "almost", "alone", "along", "already", "also", "although", "always",
		"am", "among", "amongst", "an", "and", "another", "any", "anyhow", "anyone",
		"anything", "anyway", "anywhere", "are", "around", "as", "at", "back", "be",
		"became", "because", "become", "becomes", "becoming", "been", "before",
		"beforehand", "behind", "being", "below", "beside", "besides", "between",
		"beyond", "both", "bottom", "but", "by", "call", "can", "cannot", "could",
		"do", "done", "down", "due", "during", "each", "either", "else", "elsewhere",
		"empty", "enough", "etc", "even", "ever", "every", "everyone", "everything",
		"everywhere", "except", "few", "first", "for", "former", "formerly", "from",
		"front", "full", "further", "get", "give", "go", "had", "has", "have", "he",
		"hence", "her", "here", "hereafter", "hereby", "herein", "hereupon", "hers",
		"herself", "him", "himself", "his", "how", "however", "if", "in", "indeed",
		"into", "is", "it", "its", "itself", "keep", "last", "latter", "latterly",
		"least", "less", "many", "may", "me", "meanwhile", "might", "mine", "more",
		"moreover", "most", "mostly", "much", "must", "my", "myself", "namely",
		"neither", "never", "nevertheless", "next", "no", "nobody", "none", "noone",
		"nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on",
		"once", "one", "only", "onto", "or", "other", "others", "otherwise", "our",
		"ours", "ourselves", "out", "over", "own", "per", "perhaps", "please",
		"rather", "re", "same", "see", "seem", "seemed", "seeming", "seems",
		"several", "she", "should", "since", "so", "some", "somehow", "someone",
		"something", "sometime", "sometimes", "somewhere", "still", "such", "take",
		"than", "that", "the", "their", "them", "themselves", "then", "thence",
		"there", "thereafter", "thereby", "therefore", "therein", "thereupon",
		"these", "they", "this", "those", "though", "through", "throughout", "thru",
		"thus", "to", "together", "too", "top", "toward", "towards", "under",
		"until", "up", "upon", "us", "very", "via", "was", "we", "well", "were",
		"what", "whatever", "when", "whence", "whenever", "where", "whereafter",
		"whereas", "whereby", "wherein", "whereupon", "wherever", "whether",
		"which", "while", "whither", "who", "whoever", "whole", "whom", "whose",
		"why", "will", "with", "within", "without", "would", "yet", "you", "your",
		"yours", "yourself", "yourselves",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
