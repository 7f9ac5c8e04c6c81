// internal/service/admin/helpers.go
package admin

import "net/url"

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}
