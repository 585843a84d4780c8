package interp_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// These snapshot the full stdout of a handful of representative programs,
// covering classes, inheritance, closures, and control flow together
// rather than asserting on one expression at a time.

func TestSnapshotClassHierarchyAndClosures(t *testing.T) {
	out, err := run(t, `
class Animal {
  init(name) {
    this.name = name;
  }
  speak() {
    print this.name + " makes a sound.";
  }
}

class Dog < Animal {
  speak() {
    super.speak();
    print this.name + " barks.";
  }
}

fun counterFrom(start) {
  var n = start;
  fun next() {
    n = n + 1;
    return n;
  }
  return next;
}

var rex = Dog("Rex");
rex.speak();

var c = counterFrom(10);
print c();
print c();
print c();
`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestSnapshotControlFlowAndRecursion(t *testing.T) {
	out, err := run(t, `
fun fact(n) {
  if (n <= 1) return 1;
  return n * fact(n - 1);
}

for (var i = 1; i <= 5; i = i + 1) {
  print fact(i);
}

var i = 0;
while (i < 3) {
  print "tick";
  print i;
  i = i + 1;
}
`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}
