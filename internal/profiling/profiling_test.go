package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	Add("glfw.PollEvents", 2*time.Millisecond)
	Add("glfw.SwapBuffers", 3*time.Millisecond)
	Add("shapes.Render", 5*time.Millisecond)

	assert.Equal(t, 5*time.Millisecond, SumWithPrefix("glfw."))
	assert.Equal(t, 10*time.Millisecond, SumWithPrefix(""))

	ResetFrame()
	assert.Empty(t, Snapshot())
}

func TestTopN(t *testing.T) {
	ResetFrame()
	Add("a", 1*time.Millisecond)
	Add("b", 4200*time.Microsecond)
	Add("c", 2*time.Millisecond)

	assert.Equal(t, "b:4.2ms, c:2ms", TopN(2))
	assert.Equal(t, "b:4.2ms, c:2ms, a:1ms", TopN(10))
	ResetFrame()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		stop := Track("x")
		stop()
	}
	assert.Len(t, Snapshot(), 1)
	ResetFrame()
}
