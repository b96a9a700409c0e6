package geom

import (
	"math"
	"testing"
)

func TestQuaternion(t *testing.T) {
	const eps = 0.000001

	{
		q := NewEuler(0, 0, 0, RotationOrderXYZ).ToQuaternion()
		v1 := NewVector3(1, 2, 3)
		v2 := q.ApplyTo(v1)
		if v2.Sub(v1).Len() > eps {
			t.Error("v1 != v2: ", v1, v2)
		}
	}

	{
		q := NewEuler(2*math.Pi, 0, 0, RotationOrderXYZ).ToQuaternion()
		v1 := NewVector3(1, 2, 3)
		v2 := q.ApplyTo(v1)
		if v2.Sub(v1).Len() > eps {
			t.Error("v1 != v2: ", v1, v2)
		}
	}

	{
		q := NewEuler(math.Pi, 0, 0, RotationOrderXYZ).ToQuaternion()
		q = q.Mul(q)
		v1 := NewVector3(1, 2, 3)
		v2 := q.ApplyTo(v1)
		if v2.Sub(v1).Len() > eps {
			t.Error("v1 != v2: ", v1, v2)
		}
	}

	{
		q := NewEuler(1, 2, 3, RotationOrderXYZ).ToQuaternion()
		q = q.Mul(q.Inverse())
		v1 := NewVector3(1, 2, 3)
		v2 := q.ApplyTo(v1)
		if v2.Sub(v1).Len() > eps {
			t.Error("v1 != v2: ", v1, v2)
		}
	}
}

func TestQuaternion_MatrixRoundTrip(t *testing.T) {
	const eps = 0.000001

	q1 := NewEuler(1, 2, 3, RotationOrderXYZ).ToQuaternion()
	q2 := NewQuaternionFromMatrix4(NewRotationMatrix4FromQuaternion(q1))
	if q1.Sub(q2).Len() > eps && q1.Add(q2).Len() > eps {
		t.Error("q1 != q2: ", q1, q2)
	}

	v1 := NewVector3(1, 2, 3)
	m := NewRotationMatrix4FromQuaternion(q1)
	if m.ApplyTo(v1).Sub(q1.ApplyTo(v1)).Len() > eps {
		t.Error("matrix and quaternion disagree: ", m.ApplyTo(v1), q1.ApplyTo(v1))
	}
}
