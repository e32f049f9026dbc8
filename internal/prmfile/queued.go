package prmfile

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

// requestHandler is satisfied by both scoring.Term and transform.Step,
// and by their aggregates, which forward a SetParam request by full name
// to whichever descendant it addresses.
type requestHandler interface {
	HandleRequest(request.Request)
}

// ApplyQueuedParams broadcasts every `section@key=value` assignment
// collected while parsing src through root as a targeted SetParam
// request, the way a PROTOCOL file's ANNEAL stage can reach into a term
// defined in a different section (e.g. `vdw@WEIGHT=0.5`) without that
// term's own section needing to know about the override.
func ApplyQueuedParams(src *Source, root requestHandler) {
	for _, q := range src.QueuedParams() {
		root.HandleRequest(request.NewSetParamFor(q.Target, q.Param, variant.String(q.Value)))
	}
}
