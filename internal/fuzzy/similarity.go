package fuzzy

// Similarity scores two normalized names in [0,1]. It takes the larger of the
// longest-common-substring ratio and the Levenshtein ratio so that both
// partial names ("sword" vs "iron sword") and typos ("shiled") score well.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	lcs := 2 * float64(longestCommonSubstring(ra, rb)) / float64(len(ra)+len(rb))

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	lev := 1 - float64(levenshtein(ra, rb))/float64(longest)

	if lcs > lev {
		return lcs
	}
	return lev
}

func longestCommonSubstring(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
