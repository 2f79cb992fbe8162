package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/xvierd/vessel-cli/internal/scheme"
)

const settleEpsilon = 0.01

// poseAnimator eases the displayed pose toward the scene's target pose
// with a critically damped spring.
type poseAnimator struct {
	fps     int
	current scheme.Pose
	target  scheme.Pose
	vel     [3]float64
	spring  harmonica.Spring
	started bool
}

func newPoseAnimator(fps int) poseAnimator {
	return poseAnimator{fps: fps, current: scheme.RestPose(), target: scheme.RestPose()}
}

// retarget starts a new transition when p differs from the current
// target. The first pose is adopted without animating.
func (a poseAnimator) retarget(p scheme.Pose) poseAnimator {
	if !a.started {
		a.started = true
		a.current, a.target = p, p
		return a
	}
	if p.Equal(a.target) {
		return a
	}
	a.target = p
	a.spring = harmonica.NewSpring(harmonica.FPS(a.fps), angularFrequency(p), 1.0)
	return a
}

// angularFrequency settles the spring in roughly the pose's duration.
func angularFrequency(p scheme.Pose) float64 {
	secs := p.Duration.Seconds()
	if secs < 0.1 {
		secs = 0.1
	}
	return 6 / secs
}

func (a poseAnimator) step() poseAnimator {
	if a.settled() {
		return a
	}
	a.current.Rotate, a.vel[0] = a.spring.Update(a.current.Rotate, a.vel[0], a.target.Rotate)
	a.current.OffsetY, a.vel[1] = a.spring.Update(a.current.OffsetY, a.vel[1], a.target.OffsetY)
	a.current.Opacity, a.vel[2] = a.spring.Update(a.current.Opacity, a.vel[2], a.target.Opacity)
	a.current.Opacity = math.Max(0, math.Min(1, a.current.Opacity))

	if near(a.current.Rotate, a.target.Rotate, a.vel[0]) &&
		near(a.current.OffsetY, a.target.OffsetY, a.vel[1]) &&
		near(a.current.Opacity, a.target.Opacity, a.vel[2]) {
		a.current = a.target
		a.vel = [3]float64{}
	}
	return a
}

func (a poseAnimator) settled() bool {
	return a.current.Equal(a.target) && a.vel == [3]float64{}
}

func near(pos, target, vel float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}
