package lti

import "math/cmplx"

// Series returns the cascade of a and b, H(s) = A(s) * B(s).
//
// The response is formed point-wise: magnitudes multiply and phases add.
// Features are the union of both systems' features (possible pole/zero
// cancellations are not detected).
func Series(a, b System) System {
	return &series{a: a, b: b}
}

type series struct {
	a, b System
}

func (s *series) Poles() []complex128 {
	return concatFeatures(s.a.Poles(), s.b.Poles())
}

func (s *series) Zeros() []complex128 {
	return concatFeatures(s.a.Zeros(), s.b.Zeros())
}

func (s *series) FrequencyResponse(omega []float64) (mag, phase []float64, err error) {
	magA, phaseA, err := s.a.FrequencyResponse(omega)
	if err != nil {
		return nil, nil, err
	}

	magB, phaseB, err := s.b.FrequencyResponse(omega)
	if err != nil {
		return nil, nil, err
	}

	mag = make([]float64, len(omega))
	phase = make([]float64, len(omega))

	for i := range omega {
		mag[i] = magA[i] * magB[i]
		phase[i] = phaseA[i] + phaseB[i]
	}

	return mag, phase, nil
}

// UnityFeedback closes a unity feedback loop around loop and returns the
// sensitivity system
//
//	S(jω) = 1 / (1 + L(jω))
//
// evaluated point-wise from the loop response. The zeros of S are the poles
// of L. The closed-loop pole locations are not computed (that would require
// root finding), so Poles also reports the open-loop poles; the corner
// frequencies of L are what a derived sweep needs to bracket.
func UnityFeedback(loop System) System {
	return &unityFeedback{loop: loop}
}

type unityFeedback struct {
	loop System
}

func (u *unityFeedback) Poles() []complex128 { return u.loop.Poles() }

func (u *unityFeedback) Zeros() []complex128 { return u.loop.Poles() }

func (u *unityFeedback) FrequencyResponse(omega []float64) (mag, phase []float64, err error) {
	magL, phaseL, err := u.loop.FrequencyResponse(omega)
	if err != nil {
		return nil, nil, err
	}

	mag = make([]float64, len(omega))
	phase = make([]float64, len(omega))

	for i := range omega {
		s := 1 / (1 + cmplx.Rect(magL[i], phaseL[i]))
		mag[i] = cmplx.Abs(s)
		phase[i] = cmplx.Phase(s)
	}

	return mag, phase, nil
}

func concatFeatures(a, b []complex128) []complex128 {
	out := make([]complex128, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}
