package models

// DashboardStats is the unscoped system-wide summary.
type DashboardStats struct {
	TotalMachines    int     `json:"total_machines"`
	TotalClients     int     `json:"total_clients"`
	TotalOperators   int     `json:"total_operators"`
	TotalReadings    int     `json:"total_readings"`
	TotalGross       float64 `json:"total_gross"`
	TotalCommissions float64 `json:"total_commissions"`
	TotalNet         float64 `json:"total_net"`
}

// MachineReport summarizes the readings of a single machine.
type MachineReport struct {
	Machine       *Machine  `json:"machine"`
	Readings      []Reading `json:"readings"`
	TotalGross    float64   `json:"total_gross"`
	TotalNet      float64   `json:"total_net"`
	TotalReadings int       `json:"total_readings"`
}

// ClientReport summarizes the readings of all machines owned by a client.
type ClientReport struct {
	Client          *Client   `json:"client"`
	Machines        []Machine `json:"machines"`
	Readings        []Reading `json:"readings"`
	TotalGross      float64   `json:"total_gross"`
	TotalCommission float64   `json:"total_commission"`
	TotalReadings   int       `json:"total_readings"`
}

// RegionReport summarizes the readings of all machines placed in a region.
type RegionReport struct {
	Region        *Region   `json:"region"`
	Machines      []Machine `json:"machines"`
	Readings      []Reading `json:"readings"`
	TotalGross    float64   `json:"total_gross"`
	TotalNet      float64   `json:"total_net"`
	TotalMachines int       `json:"total_machines"`
}
