package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/gosignup/internal/pkg/router.middlewareRecoverer.func1.1()
	/app/internal/pkg/router/middleware_recover.go:25 +0x6a
panic({0x10a2c40?, 0x1242e10?})
	/usr/local/go/src/runtime/panic.go:785 +0x132
github.com/shandysiswandi/gosignup/internal/signup/inbound.(*endpoint).SignUp(...)
	/app/internal/signup/inbound/http_endpoint.go:40
`)

	got := InternalPaths(stack)

	assert.Equal(t, []string{
		"internal/pkg/router/middleware_recover.go:25",
		"internal/signup/inbound/http_endpoint.go:40",
	}, got)
}

func TestInternalPaths_NoInternalFrames(t *testing.T) {
	assert.Empty(t, InternalPaths([]byte("goroutine 1 [running]:\nmain.main()\n\t/app/main.go:10 +0x1d\n")))
	assert.Empty(t, InternalPaths(nil))
}
