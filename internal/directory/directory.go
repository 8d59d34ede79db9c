package directory

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Directory maps medical specialties to the on-call doctor's phone number.
// It is read-only for the lifetime of the process.
type Directory struct {
	doctors map[string]string
}

// defaultDoctors mirrors the pilot deployment's contact list. Deployments
// override it with a YAML file via DOCTORS_FILE.
var defaultDoctors = map[string]string{
	"Internal Medicine":                  "+250794290793",
	"Surgery":                            "+250796196556",
	"Pediatrics":                         "+250794290793",
	"Obstetrics and Gynecology (OB-GYN)": "+250796196556",
	"Dermatology":                        "+250796196556",
	"Psychiatry":                         "+250796196556",
	"Radiology":                          "+250794290793",
	"Pathology":                          "+250794290793",
	"Pharmacy":                           "+250794290793",
	"Critical Care Medicine":             "+250796196556",
	"Preventive Medicine":                "+250796196556",
	"Supportive and Allied Health":       "+250794290793",
	"Anesthesiology":                     "+250796196556",
}

func Default() *Directory {
	return &Directory{doctors: defaultDoctors}
}

// Load reads a specialty to phone-number mapping from a YAML file.
func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read doctor directory: %w", err)
	}

	doctors := make(map[string]string)
	if err := yaml.Unmarshal(raw, &doctors); err != nil {
		return nil, fmt.Errorf("unable to parse doctor directory: %w", err)
	}
	if len(doctors) == 0 {
		return nil, fmt.Errorf("doctor directory %s is empty", path)
	}

	return &Directory{doctors: doctors}, nil
}

// Number returns the contact number for a specialty.
func (d *Directory) Number(specialty string) (string, bool) {
	number, ok := d.doctors[specialty]
	return number, ok
}

// Specialties lists the known specialties in sorted order.
func (d *Directory) Specialties() []string {
	specialties := make([]string, 0, len(d.doctors))
	for specialty := range d.doctors {
		specialties = append(specialties, specialty)
	}
	sort.Strings(specialties)
	return specialties
}

// All returns a copy of the full mapping.
func (d *Directory) All() map[string]string {
	out := make(map[string]string, len(d.doctors))
	for specialty, number := range d.doctors {
		out[specialty] = number
	}
	return out
}
