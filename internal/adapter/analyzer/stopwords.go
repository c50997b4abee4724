package analyzer

import (
	"fmt"
	"strings"
)

// Stopwords returns the stop-word set for a language.
func Stopwords(language string) (map[string]struct{}, error) {
	var words []string
	switch strings.ToLower(language) {
	case "french", "fr":
		words = frenchStopwords
	case "english", "en":
		words = englishStopwords
	default:
		return nil, fmt.Errorf("no stop words for language %q", language)
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m, nil
}

var frenchStopwords = []string{
	"a", "à", "afin", "ai", "aie", "ainsi", "alors", "au", "aucun", "aucune",
	"aupres", "auquel", "aussi", "autre", "autres", "aux", "auxquelles",
	"auxquels", "avait", "avant", "avec", "avoir", "c", "ça", "car", "ce",
	"ceci", "cela", "celle", "celles", "celui", "cependant", "ces", "cet",
	"cette", "ceux", "chaque", "chez", "ci", "comme", "comment", "d", "dans",
	"de", "depuis", "des", "desquelles", "desquels", "donc", "dont", "du",
	"duquel", "elle", "elles", "en", "encore", "entre", "est", "et", "été",
	"étaient", "était", "être", "eu", "eux", "fait", "font", "hors", "ici",
	"il", "ils", "j", "je", "jusqu", "l", "la", "laquelle", "le", "lequel",
	"les", "lesquelles", "lesquels", "leur", "leurs", "lors", "lui", "m",
	"mais", "me", "même", "mêmes", "mes", "moi", "mon", "n", "ne", "ni",
	"non", "nos", "notre", "nous", "on", "ont", "or", "ou", "où", "par",
	"parce", "pas", "peu", "peut", "plus", "plusieurs", "pour", "pourquoi",
	"puis", "qu", "quand", "que", "quel", "quelle", "quelles", "quels", "qui",
	"quoi", "s", "sa", "sans", "se", "selon", "ses", "si", "sinon", "soit",
	"son", "sont", "sous", "sur", "t", "ta", "te", "tes", "toi", "ton",
	"tous", "tout", "toute", "toutes", "très", "tu", "un", "une", "unes",
	"uns", "vers", "voici", "voilà", "vos", "votre", "vous", "y",
}

var englishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for",
	"from", "has", "he", "in", "is", "it", "its", "of", "on",
	"that", "the", "to", "was", "were", "will", "with", "this",
	"have", "had", "but", "not", "you", "your", "we", "our",
	"they", "their", "she", "her", "his", "if", "or", "so",
	"no", "can", "do", "does", "did", "been", "being", "would",
	"could", "should", "may", "might", "must", "shall", "which",
	"who", "whom", "what", "when", "where", "why", "how", "all",
	"each", "every", "both", "few", "more", "most", "other",
	"some", "such", "than", "too", "very", "just", "also",
	"these", "those", "there", "into", "about", "over", "between",
}
