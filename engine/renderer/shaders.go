package renderer

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
)

const bindings = `
@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(0) @binding(1) var<storage, read> instances: array<Instance>;
`

const instancedVertex = `
struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) local: vec2<f32>,
    @location(2) atlas: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput, @builtin(instance_index) index: u32) -> VertexOutput {
    let inst = instances[index];
    var out: VertexOutput;
    out.clip = camera.projection * camera.view * inst.model * vec4<f32>(in.position, 1.0);
    out.normal = normalize((inst.normal * vec4<f32>(in.normal, 0.0)).xyz);
    out.local = in.tex_coord;
    out.atlas = inst.uv;
    return out;
}
`

// worldShaderSource lights world geometry with one fixed directional light.
const worldShaderSource = camera.GPUCameraUniformSource + "\n" +
	model.GPUInstanceSource + "\n" +
	model.GPUVertexSource + "\n" +
	bindings + instancedVertex + `
const LIGHT_DIR = vec3<f32>(0.3, -1.0, 0.5);

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let diffuse = max(dot(in.normal, normalize(-LIGHT_DIR)), 0.0);
    let cell = floor(in.local * 8.0);
    let checker = (cell.x + cell.y) % 2.0;
    let base = mix(vec3<f32>(0.55, 0.55, 0.6), vec3<f32>(0.7, 0.7, 0.75), checker);
    return vec4<f32>(base * (0.3 + 0.7 * diffuse), 1.0);
}
`

// uiShaderSource draws atlas cells procedurally: the reticle row as a crosshair,
// the digit row as seven-segment digits and any other row as an outlined banner.
const uiShaderSource = camera.GPUCameraUniformSource + "\n" +
	model.GPUInstanceSource + "\n" +
	model.GPUVertexSource + "\n" +
	bindings + instancedVertex + `
var<private> SEGMENTS: array<u32, 10> = array<u32, 10>(0x3Fu, 0x06u, 0x5Bu, 0x4Fu, 0x66u, 0x6Du, 0x7Du, 0x07u, 0x7Fu, 0x6Fu);

fn segment_lit(mask: u32, p: vec2<f32>) -> bool {
    let t = 0.12;
    let top = p.y < t && p.x > t && p.x < 1.0 - t;
    let mid = abs(p.y - 0.5) < t * 0.5 && p.x > t && p.x < 1.0 - t;
    let bottom = p.y > 1.0 - t && p.x > t && p.x < 1.0 - t;
    let left = p.x < t;
    let right = p.x > 1.0 - t;
    let upper = p.y < 0.5;
    return ((mask & 0x01u) != 0u && top)
        || ((mask & 0x02u) != 0u && right && upper)
        || ((mask & 0x04u) != 0u && right && !upper)
        || ((mask & 0x08u) != 0u && bottom)
        || ((mask & 0x10u) != 0u && left && !upper)
        || ((mask & 0x20u) != 0u && left && upper)
        || ((mask & 0x40u) != 0u && mid);
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let p = in.local;
    let white = vec4<f32>(1.0, 1.0, 1.0, 1.0);
    if (in.atlas.y >= 0.75) {
        let c = abs(p - vec2<f32>(0.5, 0.5));
        let bar = (c.x < 0.015 && c.y < 0.12) || (c.y < 0.015 && c.x < 0.12);
        if (!bar || (c.x < 0.03 && c.y < 0.03)) {
            discard;
        }
        return white;
    }
    if (in.atlas.y < 0.125) {
        let digit = u32(round(in.atlas.x / 0.1)) % 10u;
        let q = (p - vec2<f32>(0.15, 0.1)) / vec2<f32>(0.7, 0.8);
        if (any(q < vec2<f32>(0.0)) || any(q > vec2<f32>(1.0)) || !segment_lit(SEGMENTS[digit], q)) {
            discard;
        }
        return white;
    }
    let edge = min(min(p.x, 1.0 - p.x), min(p.y, 1.0 - p.y));
    if (edge < 0.04) {
        return white;
    }
    let row = in.atlas.y * 8.0;
    return vec4<f32>(0.2 + 0.1 * row, 0.3, 0.6 - 0.05 * row, 0.85);
}
`

// skyboxShaderSource draws a full-screen triangle with a vertical gradient.
const skyboxShaderSource = `
struct SkyOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) height: f32,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> SkyOutput {
    let x = f32(i32(index & 1u) * 4 - 1);
    let y = f32(i32(index >> 1u) * 4 - 1);
    var out: SkyOutput;
    out.clip = vec4<f32>(x, y, 1.0, 1.0);
    out.height = y * 0.5 + 0.5;
    return out;
}

@fragment
fn fs_main(in: SkyOutput) -> @location(0) vec4<f32> {
    let horizon = vec3<f32>(0.75, 0.85, 0.95);
    let zenith = vec3<f32>(0.25, 0.45, 0.8);
    return vec4<f32>(mix(horizon, zenith, clamp(in.height, 0.0, 1.0)), 1.0);
}
`
