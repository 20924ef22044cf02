package render

// The renderer ships one shader pair per logical texture kind (sprites,
// glyph cache) and compatibility profile. The matrix is uploaded
// without transposition, so the vertex shaders multiply with the vector
// on the left.

type shaderKind int

const (
	shaderSprite shaderKind = iota
	shaderText
)

// shaderSources returns the vertex and fragment sources for a shader
// kind under the given profile.
func shaderSources(kind shaderKind, profile Profile) (vert, frag string) {
	if profile == ProfileLegacy {
		if kind == shaderText {
			return legacyVertexSource, legacyTextFragmentSource
		}
		return legacyVertexSource, legacySpriteFragmentSource
	}
	if kind == shaderText {
		return vertexSource, textFragmentSource
	}
	return vertexSource, spriteFragmentSource
}

const vertexSource = `#version 330

uniform mat4 projection_matrix;

in vec3 position;
in vec2 texcoord;
in vec4 color;

out vec2 frag_texcoord;
out vec4 frag_color;

void main() {
    gl_Position = vec4(position, 1.0) * projection_matrix;
    frag_texcoord = texcoord;
    frag_color = color;
}
`

const spriteFragmentSource = `#version 330

uniform sampler2D tex;

in vec2 frag_texcoord;
in vec4 frag_color;

out vec4 out_color;

void main() {
    vec4 c = texture(tex, frag_texcoord) * frag_color;
    if (c.a < 0.00390625) {
        discard;
    }
    out_color = c;
}
`

// The glyph cache is a single-channel texture; its red channel is the
// coverage value and the vertex color provides the text color.
const textFragmentSource = `#version 330

uniform sampler2D tex;

in vec2 frag_texcoord;
in vec4 frag_color;

out vec4 out_color;

void main() {
    float coverage = texture(tex, frag_texcoord).r;
    vec4 c = vec4(frag_color.rgb, frag_color.a * coverage);
    if (c.a < 0.00390625) {
        discard;
    }
    out_color = c;
}
`

const legacyVertexSource = `#version 110

uniform mat4 projection_matrix;

attribute vec3 position;
attribute vec2 texcoord;
attribute vec4 color;

varying vec2 frag_texcoord;
varying vec4 frag_color;

void main() {
    gl_Position = vec4(position, 1.0) * projection_matrix;
    frag_texcoord = texcoord;
    frag_color = color;
}
`

const legacySpriteFragmentSource = `#version 110

uniform sampler2D tex;

varying vec2 frag_texcoord;
varying vec4 frag_color;

void main() {
    vec4 c = texture2D(tex, frag_texcoord) * frag_color;
    if (c.a < 0.00390625) {
        discard;
    }
    gl_FragColor = c;
}
`

// Single-channel textures upload as GL_ALPHA on the legacy profile, so
// the coverage value is sampled from the alpha channel there.
const legacyTextFragmentSource = `#version 110

uniform sampler2D tex;

varying vec2 frag_texcoord;
varying vec4 frag_color;

void main() {
    float coverage = texture2D(tex, frag_texcoord).a;
    vec4 c = vec4(frag_color.rgb, frag_color.a * coverage);
    if (c.a < 0.00390625) {
        discard;
    }
    gl_FragColor = c;
}
`
