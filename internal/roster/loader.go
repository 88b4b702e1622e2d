package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"staffgrip/internal/domain"
	"staffgrip/internal/eventbus"
)

const loadBatchSize = 100

// LoaderService reads the roster in the background and publishes batches
// on the event bus as they arrive
type LoaderService interface {
	StartLoad(ctx context.Context, source string, sampleSize int) error
	StopLoad()
}

// loaderService is the concrete implementation
type loaderService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoaderService creates a new loader service
func NewLoaderService(bus eventbus.EventBus) LoaderService {
	ls := &loaderService{
		bus: bus,
	}
	return ls
}

// StartLoad begins reading the roster. An empty source generates a sample
// roster of sampleSize rows instead of reading a file.
func (ls *loaderService) StartLoad(ctx context.Context, source string, sampleSize int) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	ls.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	ls.cancelFunc = cancel
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.RosterLoadStartedEvent{Source: source})

	ls.wg.Add(1)
	go func() {
		defer ls.wg.Done()

		var read int
		var err error
		if source == "" {
			read = ls.generateSample(loadCtx, sampleSize)
		} else {
			read, err = ls.loadCSV(loadCtx, source)
		}

		ls.mu.Lock()
		ls.isLoading = false
		ls.cancelFunc = nil
		ls.mu.Unlock()

		if err != nil {
			ls.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("roster load failed: %s", source),
				Err:     err,
			})
		}
		ls.bus.Publish(eventbus.RosterLoadCompletedEvent{EmployeesRead: read, Err: err})
	}()

	return nil
}

// StopLoad cancels an in-progress load
func (ls *loaderService) StopLoad() {
	ls.mu.Lock()
	cancel := ls.cancelFunc
	ls.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	ls.wg.Wait()
}

// loadCSV reads employees from a CSV file with a header row:
// id,name,title,department,email,location,start_date
func (ls *loaderService) loadCSV(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Skip the header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read roster header: %w", err)
	}

	total := 0
	batch := make([]domain.Employee, 0, loadBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ls.bus.Publish(eventbus.EmployeesLoadedBatchEvent{Offset: total, Employees: batch})
		total += len(batch)
		batch = make([]domain.Employee, 0, loadBatchSize)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("Roster load cancelled after %d employees", total)
			flush()
			return total, nil
		default:
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			flush()
			return total, fmt.Errorf("failed to read roster row: %w", err)
		}
		if len(record) < 2 {
			// Tolerate short rows rather than aborting the whole load
			continue
		}

		batch = append(batch, employeeFromRecord(record))
		if len(batch) >= loadBatchSize {
			flush()
		}
	}
	flush()
	return total, nil
}

// generateSample synthesizes a deterministic roster for demo use
func (ls *loaderService) generateSample(ctx context.Context, size int) int {
	titles := []string{"Engineer", "Designer", "Recruiter", "Manager", "Analyst", "Coordinator"}
	departments := []string{"Engineering", "Design", "People", "Finance", "Sales", "Support"}
	locations := []string{"Berlin", "London", "New York", "Remote", "Tokyo"}

	total := 0
	batch := make([]domain.Employee, 0, loadBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ls.bus.Publish(eventbus.EmployeesLoadedBatchEvent{Offset: total, Employees: batch})
		total += len(batch)
		batch = make([]domain.Employee, 0, loadBatchSize)
	}

	for i := 0; i < size; i++ {
		select {
		case <-ctx.Done():
			flush()
			return total
		default:
		}

		batch = append(batch, domain.Employee{
			ID:         fmt.Sprintf("E%05d", i+1),
			Name:       fmt.Sprintf("Employee %d", i+1),
			Title:      titles[i%len(titles)],
			Department: departments[i%len(departments)],
			Email:      fmt.Sprintf("employee%d@example.com", i+1),
			Location:   locations[i%len(locations)],
			StartDate:  fmt.Sprintf("20%02d-%02d-01", 10+i%15, 1+i%12),
		})
		if len(batch) >= loadBatchSize {
			flush()
		}
	}
	flush()
	return total
}

// employeeFromRecord maps a CSV row onto an Employee, padding missing fields
func employeeFromRecord(record []string) domain.Employee {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return domain.Employee{
		ID:         field(0),
		Name:       field(1),
		Title:      field(2),
		Department: field(3),
		Email:      field(4),
		Location:   field(5),
		StartDate:  field(6),
	}
}
