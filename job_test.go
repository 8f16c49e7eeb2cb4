package schedcore

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JobTestSuite struct {
	suite.Suite
}

func TestJobTestSuite(t *testing.T) {
	suite.Run(t, new(JobTestSuite))
}

func (ts *JobTestSuite) TestNewJobInitialState() {
	j := newJob(1, 5, 10, 2, 5)

	ts.Equal(1, j.ID)
	ts.Equal(5, j.Arrival)
	ts.Equal(10, j.Length)
	ts.Equal(10, j.Remaining)
	ts.Equal(2, j.Priority)
	ts.Equal(NeverDispatched, j.FirstDispatch)
	ts.Equal(5, j.LastObserved)
	ts.Equal(Pending, j.State())
}

func (ts *JobTestSuite) TestStateStringer() {
	ts.Equal("pending", Pending.String())
	ts.Equal("running", Running.String())
	ts.Equal("completed", Completed.String())
	ts.Equal("unknown", State(99).String())
}

func (ts *JobTestSuite) TestViewCapturesCoreID() {
	j := newJob(1, 0, 5, 0, 0)
	j.state = Running

	v := j.view(3)
	ts.Equal(3, v.CoreID)
	ts.Equal(Running, v.State)
	ts.Equal(j.ID, v.ID)
}
