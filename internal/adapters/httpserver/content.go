package httpserver

import (
	"net/http"

	"github.com/sayadalsamak/store/internal/domain"
)

// --- Homepage content ---

func (s *Server) handleHomepageActive(w http.ResponseWriter, r *http.Request) {
	c, err := s.contents.ActiveHomepage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleHomepageList(w http.ResponseWriter, r *http.Request) {
	list, err := s.contents.ListHomepage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleHomepageCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.HomepageContent
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.contents.CreateHomepage(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (s *Server) handleHomepageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in domain.HomepageContent
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	c, err := s.contents.UpdateHomepage(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleHomepageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.contents.DeleteHomepage(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

// --- About us ---

func (s *Server) handleAboutActive(w http.ResponseWriter, r *http.Request) {
	c, err := s.contents.ActiveAboutUs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleAboutList(w http.ResponseWriter, r *http.Request) {
	list, err := s.contents.ListAboutUs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleAboutCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.AboutUsContent
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.contents.CreateAboutUs(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (s *Server) handleAboutUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in domain.AboutUsContent
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	c, err := s.contents.UpdateAboutUs(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleAboutDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.contents.DeleteAboutUs(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

// --- Contact info ---

func (s *Server) handleContactInfoActive(w http.ResponseWriter, r *http.Request) {
	c, err := s.contents.ActiveContactInfo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleContactInfoList(w http.ResponseWriter, r *http.Request) {
	list, err := s.contents.ListContactInfo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleContactInfoCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactInfo
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.contents.CreateContactInfo(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (s *Server) handleContactInfoUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in domain.ContactInfo
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	c, err := s.contents.UpdateContactInfo(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *Server) handleContactInfoDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.contents.DeleteContactInfo(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
