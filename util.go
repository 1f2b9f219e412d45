package argparser

func notEmpty(first string, rest ...string) []string {
	n := make([]string, 0, len(rest)+1)
	for _, s := range append([]string{first}, rest...) {
		if s != "" {
			n = append(n, s)
		}
	}
	return n
}
