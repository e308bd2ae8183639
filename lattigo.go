/*
Package lattigo is a pure Go implementation of boolean-gate fully homomorphic encryption over
the discretized torus Z/2^32, built on the polynomial arithmetic and sampling of the Lattigo
library.

The module is organized in layers:
  - core/torus, core/lwe and core/glwe define the torus arithmetic, the LWE and GLWE ciphertexts,
    the GGSW bootstrapping key and the LWE key-switching key, together with their serialization.
  - core/engine defines the capability interfaces of an engine, their validation and their errors.
  - backends/reference implements the engine on the host.
  - schemes/boolean implements the boolean gates and their key management on top of an engine.
*/
package lattigo
