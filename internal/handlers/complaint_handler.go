package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

const maxAttachmentSize = 10 << 20 // 10 MB

type ComplaintHandler struct {
	Service *services.ComplaintService
}

func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	complaint, err := h.Service.CreateComplaint(r.Context(), callerID(r), req)
	if err != nil {
		respondError(w, err, "create complaint")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(complaint)
}

// GetComplaints returns the role-scoped complaint list: students see their
// own, staff see their assignments, admins see everything.
func (h *ComplaintHandler) GetComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.GetComplaints(r.Context(), callerID(r), callerRole(r))
	if err != nil {
		respondError(w, err, "get complaints")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaints)
}

func (h *ComplaintHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context(), callerID(r), callerRole(r))
	if err != nil {
		respondError(w, err, "get complaint stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *ComplaintHandler) GetComplaintByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	complaint, err := h.Service.GetComplaintByID(r.Context(), id, callerID(r), callerRole(r))
	if err != nil {
		respondError(w, err, "get complaint")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaint)
}

func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	complaint, err := h.Service.UpdateStatus(r.Context(), id, callerRole(r), req)
	if err != nil {
		respondError(w, err, "update complaint status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaint)
}

func (h *ComplaintHandler) AssignComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	var req struct {
		StaffID int `json:"staff_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.StaffID <= 0 {
		http.Error(w, "Invalid staff ID", http.StatusBadRequest)
		return
	}

	complaint, err := h.Service.AssignComplaint(r.Context(), id, req.StaffID, callerRole(r))
	if err != nil {
		respondError(w, err, "assign complaint")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaint)
}

// AddAttachment accepts a multipart upload and stores the file alongside the
// complaint.
func (h *ComplaintHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		http.Error(w, "Unable to read file", http.StatusBadRequest)
		return
	}

	url, err := h.Service.AddAttachment(r.Context(), id, callerID(r), callerRole(r), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(w, err, "upload attachment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
