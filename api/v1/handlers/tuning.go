package handlers

import (
	"fmt"
	"net/http"
	"net/url"
)

func GenerateTuningURLFromRequest(req *http.Request, jobName string) url.URL {
	// TODO: SSL/TLS is ignored for now
	return url.URL{
		Scheme: "http",
		Host:   req.Host,
		Path:   fmt.Sprintf("/tunings/%s", jobName),
	}
}
