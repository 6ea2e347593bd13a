package extraction

import "strings"

// ExtractCertifications returns the entries from the configured certification
// list that appear in the text, in list order. Matching is a case-insensitive
// substring scan; certification names are long enough that boundary checks
// add nothing.
func ExtractCertifications(text string, known []string) []string {
	textLower := strings.ToLower(text)

	found := []string{}
	for _, cert := range known {
		if cert == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(cert)) {
			found = append(found, cert)
		}
	}
	return found
}
