package model

// CompanySettings holds the company profile shown across the dashboard.
type CompanySettings struct {
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	BusinessHours string `json:"businessHours"`
}

// NotificationSettings toggles the individual notification channels.
type NotificationSettings struct {
	Email             bool `json:"email"`
	InApp             bool `json:"inApp"`
	MaintenanceAlerts bool `json:"maintenanceAlerts"`
	ContractorUpdates bool `json:"contractorUpdates"`
	ReportGeneration  bool `json:"reportGeneration"`
}

// AppearanceSettings holds presentation preferences for the client.
type AppearanceSettings struct {
	Theme            string `json:"theme"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Density          string `json:"density"`
}

// Settings is the singleton configuration record. Updates merge per
// top-level section; sections absent from an update are left untouched.
type Settings struct {
	Company       CompanySettings      `json:"company"`
	Notifications NotificationSettings `json:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance"`
}

// SettingsPatch is a partial settings update; nil sections are skipped.
type SettingsPatch struct {
	Company       *CompanySettings      `json:"company,omitempty"`
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Appearance    *AppearanceSettings   `json:"appearance,omitempty"`
}

// DefaultSettings returns the values materialized on first access.
func DefaultSettings() Settings {
	return Settings{
		Company: CompanySettings{
			Name:          "BlockFix",
			Address:       "123 Business Street, Tech City, TC 12345",
			Email:         "contact@blockfix.com",
			Phone:         "(555) 123-4567",
			Website:       "https://blockfix.com",
			BusinessHours: "Mon-Fri 9:00 AM - 5:00 PM",
		},
		Notifications: NotificationSettings{
			Email:             true,
			InApp:             true,
			MaintenanceAlerts: true,
			ContractorUpdates: true,
			ReportGeneration:  true,
		},
		Appearance: AppearanceSettings{
			Theme:   "dark",
			Density: "comfortable",
		},
	}
}
