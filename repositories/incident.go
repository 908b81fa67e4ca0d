//go:generate go run go.uber.org/mock/mockgen -source=../contract/contract.go -destination=../mocks/mock_contract.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"

	"transit-ops/domain"
	"transit-ops/errors"
)

const incidentPrefix = "incident:"

// IncidentRepository persists emergency records in BadgerDB and mirrors
// their title/description into a Bluge index for full-text search.
// Lifecycle mutators are serialized per incident through a keyed mutex
// so timeline entries append in invocation order.
type IncidentRepository struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewIncidentRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) *IncidentRepository {
	return &IncidentRepository{
		db:    db,
		index: index,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

// Create persists a freshly reported incident and indexes its text.
func (r *IncidentRepository) Create(incident domain.Incident) (domain.Incident, error) {
	if err := r.put(incident); err != nil {
		return domain.Incident{}, err
	}
	if err := r.indexIncident(incident); err != nil {
		return domain.Incident{}, err
	}
	return incident, nil
}

func (r *IncidentRepository) Get(id string) (domain.Incident, error) {
	var incident domain.Incident
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(incidentPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &incident)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Incident{}, fmt.Errorf("%w: %s", errors.ErrIncidentNotFound, id)
	}
	return incident, err
}

// FindActiveAndResponded returns every incident still waiting on a
// resolution.
func (r *IncidentRepository) FindActiveAndResponded() ([]domain.Incident, error) {
	return r.scan(func(incident domain.Incident) bool {
		return incident.Status == domain.StatusActive || incident.Status == domain.StatusResponded
	})
}

// FindCritical returns live critical-priority incidents.
func (r *IncidentRepository) FindCritical() ([]domain.Incident, error) {
	return r.scan(func(incident domain.Incident) bool {
		return incident.IsActive && incident.Priority == domain.PriorityCritical
	})
}

func (r *IncidentRepository) Escalate(id, actor string) (domain.Incident, error) {
	return r.mutate(id, func(incident *domain.Incident) error {
		return incident.Escalate(actor)
	})
}

func (r *IncidentRepository) AssignTeam(id, team, actor string) (domain.Incident, error) {
	return r.mutate(id, func(incident *domain.Incident) error {
		return incident.AssignTeam(team, actor)
	})
}

func (r *IncidentRepository) Resolve(id, summary, actor string) (domain.Incident, error) {
	return r.mutate(id, func(incident *domain.Incident) error {
		return incident.Resolve(summary, actor)
	})
}

func (r *IncidentRepository) Close(id, actor string) (domain.Incident, error) {
	return r.mutate(id, func(incident *domain.Incident) error {
		return incident.Close(actor)
	})
}

func (r *IncidentRepository) AddTimelineEntry(id, action, actor, details string) (domain.Incident, error) {
	return r.mutate(id, func(incident *domain.Incident) error {
		return incident.AddTimelineEntry(action, actor, details)
	})
}

// Search matches the query against indexed titles and descriptions and
// loads the matching records back from Badger.
func (r *IncidentRepository) Search(ctx context.Context, query string) ([]domain.Incident, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	textQuery := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("title")).
		AddShould(bluge.NewMatchQuery(query).SetField("description"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(100, textQuery))
	if err != nil {
		return nil, err
	}

	var incidents []domain.Incident
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		var id string
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				id = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		incident, err := r.Get(id)
		if err != nil {
			// Index may briefly run ahead of a deleted record; skip it.
			r.log.Debug("Indexed incident missing from store", "id", id)
			continue
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

// mutate applies one lifecycle operation under the incident's lock and
// returns the updated record for broadcasting. Domain rejections (for
// example a retired incident) propagate to the caller unmodified.
func (r *IncidentRepository) mutate(id string, op func(*domain.Incident) error) (domain.Incident, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	incident, err := r.Get(id)
	if err != nil {
		return domain.Incident{}, err
	}
	if err := op(&incident); err != nil {
		return domain.Incident{}, err
	}
	if err := r.put(incident); err != nil {
		return domain.Incident{}, err
	}
	if err := r.indexIncident(incident); err != nil {
		return domain.Incident{}, err
	}
	return incident, nil
}

func (r *IncidentRepository) lockFor(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

func (r *IncidentRepository) put(incident domain.Incident) error {
	bytes, err := json.Marshal(incident)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(incidentPrefix+incident.ID), bytes)
	})
}

func (r *IncidentRepository) indexIncident(incident domain.Incident) error {
	doc := bluge.NewDocument(incident.ID).
		AddField(bluge.NewTextField("title", incident.Title)).
		AddField(bluge.NewTextField("description", incident.Description))
	return r.index.Update(doc.ID(), doc)
}

func (r *IncidentRepository) scan(keep func(domain.Incident) bool) ([]domain.Incident, error) {
	var incidents []domain.Incident
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(incidentPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var incident domain.Incident
				if err := json.Unmarshal(value, &incident); err != nil {
					return err
				}
				if keep(incident) {
					incidents = append(incidents, incident)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return incidents, err
}
