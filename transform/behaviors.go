package transform

import (
	"log/slog"
	"slices"

	"github.com/specforge/monomorph/model"
)

// QueryBehaviors lists the attached behaviors that stand for shared sets of
// query parameters. The properties of such a behavior are copied into the
// query parameters of every request that attaches it.
type QueryBehaviors struct {
	// Namespace holds the interfaces that define the behaviors.
	Namespace string

	// Names are the behavior names, which are also the local names of the
	// defining interfaces.
	Names []string
}

// DefaultQueryBehaviors returns the behaviors of the API specification:
// parameters common to every request and to every cat request.
func DefaultQueryBehaviors() QueryBehaviors {
	return QueryBehaviors{
		Namespace: "_spec_utils",
		Names:     []string{"CommonQueryParameters", "CommonCatQueryParameters"},
	}
}

// Contains reports whether behavior is one of the query behaviors.
func (qb QueryBehaviors) Contains(behavior string) bool {
	return slices.Contains(qb.Names, behavior)
}

// TypeName returns the name of the interface defining behavior.
func (qb QueryBehaviors) TypeName(behavior string) model.TypeName {
	return model.TypeName{Namespace: qb.Namespace, Name: behavior}
}

// mergeQueryBehaviors appends to query the properties of every query
// behavior in attached. A behavior whose interface cannot be found is
// skipped.
func (e *expander) mergeQueryBehaviors(query []model.Property, attached []string) []model.Property {
	for _, behavior := range attached {
		if !e.opts.queryBehaviors.Contains(behavior) {
			continue
		}
		name := e.opts.queryBehaviors.TypeName(behavior)
		itf, err := e.model.GetInterface(name)
		if err != nil {
			e.opts.logger.Debug("query behavior not found",
				slog.String("behavior", name.String()),
				slog.Any("error", err),
			)
			continue
		}
		query = append(query, itf.Properties...)
		e.opts.logger.Debug("merged query behavior",
			slog.String("behavior", name.String()),
			slog.Int("properties", len(itf.Properties)),
		)
	}
	return query
}
