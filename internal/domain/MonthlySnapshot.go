package domain

import "time"

// MonthlySnapshot guarda o resumo consolidado de um tenant em um mês fechado
type MonthlySnapshot struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	Period    string           `json:"period"` // Período no formato mm-yyyy
	Summary   DashboardSummary `json:"summary"`
	Growth    DashboardGrowth  `json:"growth"`
	IsDemo    bool             `json:"is_demo"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// MonthlyReport é o relatório mensal devolvido pela API
type MonthlyReport struct {
	TenantID   string           `json:"tenantId"`
	TenantName string           `json:"tenantName,omitempty"`
	Period     string           `json:"period"`
	Summary    DashboardSummary `json:"summary"`
	Growth     DashboardGrowth  `json:"growth"`
	IsDemo     bool             `json:"isDemo,omitempty"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
