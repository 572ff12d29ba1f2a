package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

var specialties = []string{"FAMILY", "PEDIATRICIAN", "ALLERGIST"}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	path := getEnv("SEED_OUTPUT", getEnv("PROVIDERS_FILE", "providers.txt"))
	doctors := getInt("SEED_DOCTORS", 8)
	technicians := getInt("SEED_TECHNICIANS", 6)

	gofakeit.Seed(time.Now().UnixNano())

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeProviders(w, doctors, technicians); err != nil {
		log.Fatalf("write providers: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("flush %s: %v", path, err)
	}

	log.Printf("seed complete: %d doctors, %d technicians written to %s", doctors, technicians, path)
}

// writeProviders interleaves doctors and technicians at random.
func writeProviders(w *bufio.Writer, doctors, technicians int) error {
	npis := map[string]bool{}
	for d, t := 0, 0; d < doctors || t < technicians; {
		if d < doctors && (t >= technicians || gofakeit.Bool()) {
			npi := nextNPI(npis)
			if _, err := fmt.Fprintf(w, "D  %s  %s  %s  %s  %s  %s\n",
				name(gofakeit.FirstName()), name(gofakeit.LastName()), birthDate(), location(),
				specialties[gofakeit.Number(0, len(specialties)-1)], npi); err != nil {
				return err
			}
			d++
			continue
		}
		rate := gofakeit.Number(8, 30) * 5
		if _, err := fmt.Fprintf(w, "T  %s  %s  %s  %s  %d\n",
			name(gofakeit.FirstName()), name(gofakeit.LastName()), birthDate(), location(), rate); err != nil {
			return err
		}
		t++
	}
	return nil
}

func nextNPI(used map[string]bool) string {
	for {
		npi := fmt.Sprintf("%02d", gofakeit.Number(1, 99))
		if len(used) >= 99 {
			npi = strconv.Itoa(100 + len(used))
		}
		if !used[npi] {
			used[npi] = true
			return npi
		}
	}
}

// name drops anything the whitespace separated file format cannot carry.
func name(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

func birthDate() string {
	t := gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1998, 12, 31, 0, 0, 0, 0, time.UTC))
	return clinic.FromTime(t).String()
}

func location() string {
	locs := clinic.Locations()
	return locs[gofakeit.Number(0, len(locs)-1)].Name()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
