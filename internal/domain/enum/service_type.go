package enum

import (
	"database/sql/driver"
	"fmt"
)

// ServiceType identifies one of the platform's three business lines
type ServiceType string

const (
	ServiceTypeIndoorEvents ServiceType = "indoor_events"
	ServiceTypeCloudKitchen ServiceType = "cloud_kitchen"
	ServiceTypeHomemade     ServiceType = "homemade"
)

// AllServiceTypes lists every business line in a stable order
func AllServiceTypes() []ServiceType {
	return []ServiceType{ServiceTypeIndoorEvents, ServiceTypeCloudKitchen, ServiceTypeHomemade}
}

// IsValid reports whether s is one of the known service types
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeIndoorEvents, ServiceTypeCloudKitchen, ServiceTypeHomemade:
		return true
	}
	return false
}

func (s ServiceType) String() string {
	return string(s)
}

// ParseServiceType converts a raw string to a ServiceType
func ParseServiceType(raw string) (ServiceType, error) {
	st := ServiceType(raw)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown service type %q", raw)
	}
	return st, nil
}

func (s ServiceType) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ServiceType) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = ""
	case string:
		*s = ServiceType(v)
	case []byte:
		*s = ServiceType(v)
	default:
		return fmt.Errorf("cannot scan %T into ServiceType", value)
	}
	return nil
}
