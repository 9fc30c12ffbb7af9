package store

// CreateApplication assigns the next application id and stores the record
func (s *Store) CreateApplication(app Application) Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = len(s.applications) + 1
	s.applications = append(s.applications, app)
	return app
}

// GetApplicationsByJob returns all applications submitted for the given job
func (s *Store) GetApplicationsByJob(jobID int) []Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []Application{}
	for _, app := range s.applications {
		if app.JobID == jobID {
			res = append(res, app)
		}
	}
	return res
}

// GetApplicationsByUser returns all applications submitted by the given user
func (s *Store) GetApplicationsByUser(userID int) []Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []Application{}
	for _, app := range s.applications {
		if app.UserID == userID {
			res = append(res, app)
		}
	}
	return res
}

// UpdateApplicationStatus replaces the status field on an existing record and
// returns the updated record, or ErrNotFound if the id has no record. The
// status value is stored as-is, without checking it against the recognized
// enum values.
func (s *Store) UpdateApplicationStatus(id int, status string) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.applications) {
		return Application{}, ErrNotFound
	}
	s.applications[id-1].Status = status
	return s.applications[id-1], nil
}
