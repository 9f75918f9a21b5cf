package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlySnapshots = "monthly-snapshots"
	CronJobTypeAll              = "all"
)

// SyncTrigger é o contrato dos agendadores que podem ser disparados manualmente
type SyncTrigger interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlySnapshotSyncService SyncTrigger
}

func (s CronJobServices) byType() map[string]SyncTrigger {
	jobs := map[string]SyncTrigger{}
	if s.MonthlySnapshotSyncService != nil {
		jobs[CronJobTypeMonthlySnapshots] = s.MonthlySnapshotSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		var selected map[string]SyncTrigger
		switch cronType {
		case CronJobTypeAll:
			selected = jobs
		case CronJobTypeMonthlySnapshots:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			selected = map[string]SyncTrigger{cronType: job}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-snapshots, all", nil)
			return
		}

		started := []string{}
		for name, job := range selected {
			if err := job.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncRunning) {
					apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização já em andamento", map[string]string{"type": name})
					return
				}
				writeFailure(w, r, "cron", err)
				return
			}
			started = append(started, name)
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, Response{
			Success: true,
			Data: map[string]any{
				"message": "Cron job iniciada com sucesso",
				"type":    cronType,
				"started": started,
			},
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeData(w, status, nil)
	})
}
