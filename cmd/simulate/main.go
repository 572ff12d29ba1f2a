package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/billing"
	"github.com/hackgods/clinic-scheduling/internal/bootstrap"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/config"
	"github.com/hackgods/clinic-scheduling/internal/logger"
	"github.com/hackgods/clinic-scheduling/internal/ordering"
)

type SimConfig struct {
	Duration  time.Duration
	Workers   int
	Patients  int
	Dates     int
	Seed      uint64
	BookRatio float64
	MoveRatio float64
	ReadRatio float64
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Conflict  int64
	Rejected  int64
	Latencies []time.Duration
	mu        sync.Mutex
}

func (om *OperationMetrics) Record(latency time.Duration, err error) {
	atomic.AddInt64(&om.Total, 1)
	switch {
	case err == nil:
		atomic.AddInt64(&om.Success, 1)
	case appointment.IsConflict(err):
		atomic.AddInt64(&om.Conflict, 1)
	default:
		atomic.AddInt64(&om.Rejected, 1)
	}

	om.mu.Lock()
	om.Latencies = append(om.Latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, p50, p95, max time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.Latencies))
	copy(latencies, om.Latencies)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	avg = sum / time.Duration(len(latencies))
	p50 = latencies[len(latencies)*50/100]
	p95 = latencies[min(len(latencies)*95/100, len(latencies)-1)]
	max = latencies[len(latencies)-1]
	return avg, p50, p95, max
}

type Metrics struct {
	Office     OperationMetrics
	Imaging    OperationMetrics
	Cancel     OperationMetrics
	Reschedule OperationMetrics
	List       OperationMetrics
}

type Simulator struct {
	config   SimConfig
	svc      *appointment.Service
	patients []clinic.Profile
	npis     []string
	dates    []clinic.Date
	metrics  Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("simulator starting")

	baseCfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load base config: %v", err)
	}
	cfg := loadConfig()
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(getEnv("SIM_LOG_LEVEL", "warn"), baseCfg.LogFormat, "simulate")
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	app, err := bootstrap.New(context.Background(), baseCfg, zl)
	if err != nil {
		zl.Fatal("event sink connection failed", zap.Error(err))
	}
	defer app.Close()

	sim := newSimulator(cfg, app.Service)
	log.Printf("config: duration=%s workers=%d patients=%d doctors=%d dates=%d",
		cfg.Duration, cfg.Workers, len(sim.patients), len(sim.npis), len(sim.dates))

	sim.Run()
	sim.PrintReport()
}

func loadConfig() SimConfig {
	cfg := SimConfig{
		Duration:  getDuration("SIM_DURATION", 5*time.Second),
		Workers:   getInt("SIM_WORKERS", 8),
		Patients:  getInt("SIM_PATIENTS", 200),
		Dates:     getInt("SIM_DATES", 10),
		Seed:      uint64(getInt("SIM_SEED", int(time.Now().UnixNano()%1_000_000))),
		BookRatio: getFloat("SIM_BOOK_RATIO", 0.6),
		MoveRatio: getFloat("SIM_MOVE_RATIO", 0.25),
		ReadRatio: getFloat("SIM_READ_RATIO", 0.15),
	}

	total := cfg.BookRatio + cfg.MoveRatio + cfg.ReadRatio
	if total > 0 {
		cfg.BookRatio /= total
		cfg.MoveRatio /= total
		cfg.ReadRatio /= total
	}
	return cfg
}

func validateConfig(cfg SimConfig) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("SIM_WORKERS must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("SIM_DURATION must be > 0")
	}
	if cfg.Patients <= 0 || cfg.Dates <= 0 {
		return fmt.Errorf("SIM_PATIENTS and SIM_DATES must be > 0")
	}
	return nil
}

func newSimulator(cfg SimConfig, svc *appointment.Service) *Simulator {
	faker := gofakeit.New(cfg.Seed)
	s := &Simulator{config: cfg, svc: svc}

	for i := 0; i < cfg.Patients; i++ {
		dob := clinic.FromTime(faker.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)))
		s.patients = append(s.patients, clinic.NewProfile(faker.FirstName(), faker.LastName(), dob))
	}

	for _, p := range svc.Providers() {
		if doc, ok := p.(*clinic.Doctor); ok {
			s.npis = append(s.npis, doc.NPI())
		}
	}

	// bookable weekdays, starting tomorrow
	day := time.Now().AddDate(0, 0, 1)
	for len(s.dates) < cfg.Dates {
		if d := clinic.FromTime(day); !d.IsWeekend() {
			s.dates = append(s.dates, d)
		}
		day = day.AddDate(0, 0, 1)
	}
	return s
}

func (s *Simulator) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Duration)
	defer cancel()

	log.Printf("starting simulation for %s with %d workers", s.config.Duration, s.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s.worker(ctx, workerID)
		}(i)
	}

	wg.Wait()
	log.Println("simulation complete")
}

func (s *Simulator) worker(ctx context.Context, workerID int) {
	faker := gofakeit.New(s.config.Seed + uint64(workerID) + 1)
	rooms := []clinic.Radiology{clinic.CatScan, clinic.Ultrasound, clinic.XRay, clinic.MRI}
	slots := s.svc.Timeslots().Len()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		patient := s.patients[faker.Number(0, len(s.patients)-1)]
		date := s.dates[faker.Number(0, len(s.dates)-1)]
		slot := faker.Number(1, slots)

		r := faker.Float64()
		start := time.Now()
		switch {
		case r < s.config.BookRatio && len(s.npis) > 0 && faker.Bool():
			_, err := s.svc.BookOffice(ctx, appointment.OfficeRequest{
				Date: date, Slot: slot, Patient: patient, NPI: s.npis[faker.Number(0, len(s.npis)-1)],
			})
			s.metrics.Office.Record(time.Since(start), err)
		case r < s.config.BookRatio:
			_, err := s.svc.BookImaging(ctx, appointment.ImagingRequest{
				Date: date, Slot: slot, Patient: patient, Room: rooms[faker.Number(0, len(rooms)-1)],
			})
			s.metrics.Imaging.Record(time.Since(start), err)
		case r < s.config.BookRatio+s.config.MoveRatio && faker.Bool():
			_, err := s.svc.Cancel(ctx, appointment.CancelRequest{Date: date, Slot: slot, Patient: patient})
			s.metrics.Cancel.Record(time.Since(start), err)
		case r < s.config.BookRatio+s.config.MoveRatio:
			_, err := s.svc.Reschedule(ctx, appointment.RescheduleRequest{
				Date: date, Slot: slot, Patient: patient, NewSlot: faker.Number(1, slots),
			})
			s.metrics.Reschedule.Record(time.Since(start), err)
		default:
			modes := []ordering.Mode{ordering.Chronological, ordering.ByPatient, ordering.ByLocation}
			_ = s.svc.Appointments(modes[faker.Number(0, len(modes)-1)], "")
			s.metrics.List.Record(time.Since(start), nil)
		}
	}
}

func (s *Simulator) PrintReport() {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("SIMULATION REPORT")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Duration: %s\n", s.config.Duration)
	fmt.Printf("Workers: %d\n", s.config.Workers)
	fmt.Printf("Seed: %d\n", s.config.Seed)
	fmt.Println()

	printOperationReport("Office booking", &s.metrics.Office)
	printOperationReport("Imaging booking", &s.metrics.Imaging)
	printOperationReport("Cancel", &s.metrics.Cancel)
	printOperationReport("Reschedule", &s.metrics.Reschedule)
	printOperationReport("List", &s.metrics.List)

	fmt.Printf("Active appointments: %d\n", s.svc.Len())

	credited := 0
	for _, c := range s.svc.CreditReport() {
		credited += c.Amount
	}
	charged := 0
	rows := s.svc.BillingStatement(context.Background())
	for _, c := range rows {
		charged += c.Amount
	}
	fmt.Printf("Billed patients: %d\n", len(rows))
	fmt.Printf("Total charged: %s, total credited: %s\n", billing.FormatAmount(charged), billing.FormatAmount(credited))
	if charged != credited {
		fmt.Println("WARNING: charges and credits disagree")
	}
}

func printOperationReport(name string, om *OperationMetrics) {
	total := atomic.LoadInt64(&om.Total)
	if total == 0 {
		return
	}

	success := atomic.LoadInt64(&om.Success)
	conflict := atomic.LoadInt64(&om.Conflict)
	rejected := atomic.LoadInt64(&om.Rejected)

	avg, p50, p95, max := om.Stats()

	fmt.Printf("%s:\n", name)
	fmt.Printf("  Total: %d\n", total)
	fmt.Printf("  Success: %d (%.1f%%)\n", success, float64(success)/float64(total)*100)
	if conflict > 0 {
		fmt.Printf("  Conflicts: %d (%.1f%%)\n", conflict, float64(conflict)/float64(total)*100)
	}
	if rejected > 0 {
		fmt.Printf("  Rejected: %d (%.1f%%)\n", rejected, float64(rejected)/float64(total)*100)
	}
	fmt.Printf("  Latency: avg=%s p50=%s p95=%s max=%s\n", avg, p50, p95, max)
	fmt.Println()
}

// Helper functions

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
