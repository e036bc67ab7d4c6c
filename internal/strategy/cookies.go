package strategy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// materializeCookies prepares the request's cookie material for one execute
// call. Material containing newlines or tabs is treated as cookie-jar file
// content and written into dir (which the caller removes on every exit path);
// anything else is returned as a single Cookie header value.
func materializeCookies(dir, cookies string) (jarPath, headerValue string, err error) {
	cookies = strings.TrimSpace(cookies)
	if cookies == "" {
		return "", "", nil
	}
	if strings.ContainsAny(cookies, "\n\t") {
		jarPath = filepath.Join(dir, "cookies.txt")
		if err := os.WriteFile(jarPath, []byte(cookies+"\n"), 0600); err != nil {
			return "", "", fmt.Errorf("writing cookie jar: %w", err)
		}
		return jarPath, "", nil
	}
	return "", cookies, nil
}
