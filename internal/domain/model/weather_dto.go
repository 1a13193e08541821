package model

import "dashboard-api/internal/domain/entity"

// WeatherStatus reports the refresh pipeline state. The dashboard renders the
// attempt counter while loading and the last error once retries are exhausted.
type WeatherStatus struct {
	Loading     bool   `json:"loading"`
	HasData     bool   `json:"hasData"`
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"maxAttempts"`
	LastError   string `json:"lastError,omitempty"`
	LastSuccess string `json:"lastSuccess,omitempty"`
	Source      string `json:"source"`
}

// WeatherSnapshot is the API payload: the normalized data plus pipeline state.
type WeatherSnapshot struct {
	Data   *entity.WeatherData `json:"data,omitempty"`
	Status WeatherStatus       `json:"status"`
}

// RefreshCommand is the queue message that triggers an on-demand refresh.
type RefreshCommand struct {
	RequestID string `json:"requestId"`
	Reason    string `json:"reason,omitempty"`
}

// WarningNotification is published when a refresh surfaces a high-priority warning.
type WarningNotification struct {
	RequestID string                  `json:"requestId"`
	Location  string                  `json:"location"`
	Warnings  []entity.WeatherWarning `json:"warnings"`
}
