package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/neuromation/hypertune/api/v1/client/sagemaker"
	apierrors "github.com/neuromation/hypertune/api/v1/errors"
	"github.com/neuromation/hypertune/api/v1/handlers"
	"github.com/neuromation/hypertune/api/v1/orchestrator"
	"github.com/neuromation/hypertune/api/v1/status"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/config"
	"github.com/neuromation/hypertune/log"
)

// Serve starts serving web-server for accepting requests
func Serve(cfg *config.Config) error {
	log.Infof("Starting...")
	ln, err := net.Listen("tcp4", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("cannot listen for %q: %s", cfg.ListenAddr, err)
	}
	client, err := sagemaker.NewClient(context.Background(), cfg.Region)
	if err != nil {
		return fmt.Errorf("error while creating client: %s", err)
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return fmt.Errorf("error while establishing connection: %s", err)
	}

	statusService := status.NewStatusService()

	s := &http.Server{
		Handler:      newRouter(client, statusService, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	log.Infof("Started successfully. Listening on %q", cfg.ListenAddr)
	return s.Serve(ln)
}

func newRouter(client orchestrator.Client, statusService status.StatusService, cfg *config.Config) *httprouter.Router {
	r := httprouter.New()
	r.GET("/", showHelp)

	r.POST("/tunings", createTuning(client, statusService, cfg))
	r.GET("/tunings/:id", viewTuning(client))

	r.GET("/statuses/:id", handlers.ViewStatus(statusService))
	return r
}

func showHelp(rw http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	fmt.Fprintln(rw, "Available endpoints:")
	fmt.Fprintln(rw, "POST /tunings")
	fmt.Fprintln(rw, "GET /tunings/:id")
	fmt.Fprintln(rw, "GET /statuses/:id")
}

func createTuning(client orchestrator.Client, statusService status.StatusService, cfg *config.Config) httprouter.Handle {
	return func(rw http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		tc := &tuning.Config{}
		if err := decodeInto(req.Body, tc); err != nil {
			apierrors.Respond(rw, http.StatusBadRequest, "invalid tuning document", err)
			return
		}
		ApplyDefaults(tc, cfg)

		job := client.NewTuningJob(tc)
		if err := job.Start(req.Context()); err != nil {
			apierrors.Respond(rw, http.StatusBadRequest,
				fmt.Sprintf("error while creating tuning job: %s", err), err)
			return
		}

		jobName := job.GetID()
		jobUrl := handlers.GenerateTuningURLFromRequest(req, jobName)
		jobStatus := status.NewJobStatus(jobName, jobUrl.String(), orchestrator.NewJobStatusPoller(client))
		if err := statusService.Set(jobStatus); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}

		payload, err := json.Marshal(jobStatus)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}

		location := handlers.GenerateStatusURLFromRequest(req, jobStatus.Id())
		rw.Header().Set("Location", location.String())
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusAccepted)
		rw.Write(payload)
	}
}

func viewTuning(client orchestrator.Client) httprouter.Handle {
	return func(rw http.ResponseWriter, req *http.Request, params httprouter.Params) {
		jobName := params.ByName("id")
		state, err := client.GetJob(jobName).Status(req.Context())
		if err != nil {
			apierrors.Respond(rw, http.StatusBadGateway,
				fmt.Sprintf("error while querying tuning job %q", jobName), err)
			return
		}
		payload, err := json.Marshal(&struct {
			JobName string `json:"job_name"`
			State   string `json:"state"`
		}{
			JobName: jobName,
			State:   state,
		})
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)
		rw.Write(payload)
	}
}
