package openapi

// Session is the authenticated credential state obtained from an API key. It
// is held for the lifetime of the client and recreated on renewal.
type Session struct {
	Sid       string
	ExpiredAt string
	Username  string
	ApiHost   string
	WebHost   string
	ApiKey    string
}

type loginResponse struct {
	Sid       string `json:"sid"`
	ExpiredAt string `json:"expiredAt"`
	UserInfo  struct {
		Username string `json:"username"`
	} `json:"userInfo"`
}

type Workspace struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type workspaceListResponse struct {
	List  []Workspace `json:"list"`
	Total int         `json:"total"`
}

type ProjectGroup struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type ProjectCount struct {
	Experiments   int `json:"experiments"`
	Contributors  int `json:"contributors"`
	Children      int `json:"children"`
	Collaborators int `json:"collaborators"`
	RunningExps   int `json:"runningExps"`
}

type Project struct {
	Cuid        string        `json:"cuid"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Visibility  string        `json:"visibility"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   *string       `json:"updatedAt"`
	Group       ProjectGroup  `json:"group"`
	Count       *ProjectCount `json:"count,omitempty"`
}

// rawProject is the upstream list shape. The usage counters arrive under
// "_count" and only when the detail flag was requested.
type rawProject struct {
	Cuid        string        `json:"cuid"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Visibility  string        `json:"visibility"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   *string       `json:"updatedAt"`
	Group       ProjectGroup  `json:"group"`
	Count       *ProjectCount `json:"_count"`
}

func (p *rawProject) toProject() Project {
	return Project{
		Cuid:        p.Cuid,
		Name:        p.Name,
		Description: p.Description,
		Visibility:  p.Visibility,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Group:       p.Group,
		Count:       p.Count,
	}
}

type projectListResponse struct {
	List  []rawProject `json:"list"`
	Total int          `json:"total"`
}

type ExperimentUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

type ExperimentProfile struct {
	Config       map[string]interface{} `json:"config"`
	Metadata     map[string]interface{} `json:"metadata"`
	Requirements *string                `json:"requirements"`
	Conda        *string                `json:"conda"`
}

type ExperimentIndex struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type Experiment struct {
	Cuid        string            `json:"cuid"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	State       string            `json:"state"`
	Show        bool              `json:"show"`
	CreatedAt   string            `json:"createdAt"`
	FinishedAt  *string           `json:"finishedAt"`
	User        ExperimentUser    `json:"user"`
	Profile     ExperimentProfile `json:"profile"`
	Type        string            `json:"type"`
	Colors      []string          `json:"colors"`
	Labels      []string          `json:"labels"`
	Tags        []string          `json:"tags"`
	Indexes     []ExperimentIndex `json:"indexes"`
	CloneType   string            `json:"cloneType"`
	RootExpId   string            `json:"rootExpId"`
	RootProId   string            `json:"rootProId"`
}

// normalize fills in every optional field so callers never have to
// distinguish between an absent field and an empty one. The single-resource
// endpoint omits fields that the list endpoint always populates.
func (e *Experiment) normalize() {
	if e.Profile.Config == nil {
		e.Profile.Config = map[string]interface{}{}
	}
	if e.Profile.Metadata == nil {
		e.Profile.Metadata = map[string]interface{}{}
	}
	if e.Colors == nil {
		e.Colors = []string{}
	}
	if e.Labels == nil {
		e.Labels = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Indexes == nil {
		e.Indexes = []ExperimentIndex{}
	}
}

type experimentListResponse struct {
	List  []Experiment `json:"list"`
	Total int          `json:"total"`
}

type SummaryPoint struct {
	Step  int     `json:"step"`
	Value float64 `json:"value"`
}

type SummaryItem struct {
	Step  int          `json:"step"`
	Value float64      `json:"value"`
	Min   SummaryPoint `json:"min"`
	Max   SummaryPoint `json:"max"`
}

// Summary maps a metric name to its latest, minimum and maximum readings.
type Summary map[string]SummaryItem

type rawSummaryExtremum struct {
	Index int     `json:"index"`
	Data  float64 `json:"data"`
}

type rawSummaryItem struct {
	Step  int                `json:"step"`
	Value float64            `json:"value"`
	Min   rawSummaryExtremum `json:"min"`
	Max   rawSummaryExtremum `json:"max"`
}

type summaryRequest struct {
	ExperimentId     string `json:"experimentId"`
	ProjectId        string `json:"projectId"`
	RootExperimentId string `json:"rootExperimentId,omitempty"`
	RootProjectId    string `json:"rootProjectId,omitempty"`
}

// MetricRow maps a column name to a numeric, string or null cell value.
type MetricRow map[string]interface{}

// MetricsData maps a metric key to its ordered sequence of rows. Keys whose
// export failed are absent from the mapping.
type MetricsData map[string][]MetricRow

type columnCsvResponse struct {
	Url string `json:"url"`
}
