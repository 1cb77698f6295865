package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raycaster/config"
	"raycaster/geom"
	"raycaster/scene"
)

func buildShader(vertexShaderSource, fragmentShaderSource string) uint32 {
	vertex := gl.CreateShader(gl.VERTEX_SHADER)
	cvs, freeVertex := gl.Strs(vertexShaderSource)
	gl.ShaderSource(vertex, 1, cvs, nil)
	freeVertex()
	gl.CompileShader(vertex)
	checkShaderCompileErrors(vertex, "VERTEX")

	fragment := gl.CreateShader(gl.FRAGMENT_SHADER)
	cfs, freeFragment := gl.Strs(fragmentShaderSource)
	gl.ShaderSource(fragment, 1, cfs, nil)
	freeFragment()
	gl.CompileShader(fragment)
	checkShaderCompileErrors(fragment, "FRAGMENT")

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	checkProgramLinkErrors(program)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return program
}

func checkShaderCompileErrors(shader uint32, shaderType string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		log.Printf("[%s SHADER COMPILE ERROR]:\n%s\n", shaderType, strings.TrimSpace(logMsg))
	}
}

func checkProgramLinkErrors(program uint32) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		log.Printf("[PROGRAM LINK ERROR]:\n%s\n", strings.TrimSpace(logMsg))
	}
}

func render(ctx context.Context, s *scene.Scene, flags *config.Flags) (*image.RGBA, error) {
	start := time.Now()
	frame, err := scene.Render(ctx, s, scene.Options{
		Width:   flags.Width(),
		Height:  flags.Height(),
		Workers: flags.Workers(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render scene: %w", err)
	}
	log.Printf("[RENDER] %dx%d %s, light %v, %s, coverage %.1f%%",
		frame.Width, frame.Height, flags.Mode(), s.Light, time.Since(start), frame.Coverage()*100)
	return frame.Image(flags.Mode(), scene.Black), nil
}

func main() {
	runtime.LockOSThread()

	flags, err := config.NewFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		return
	}

	s := scene.Default(flags.Width(), flags.Height())
	s.Light = flags.Light()
	if err := s.Validate(); err != nil {
		log.Fatalf("[SCENE ERROR]: %v", err)
	}
	lo, hi := s.Footprint()
	log.Printf("[SCENE] camera %v, canvas %v..%v at z=%g, sphere %v r=%g",
		s.Camera, lo, hi, s.Canvas.Origin().Z, s.Sphere.Center, s.Sphere.Radius)

	ctx := context.Background()
	if !flags.Windowed() {
		img, err := render(ctx, s, flags)
		if err != nil {
			log.Fatalf("[RENDER ERROR]: %v", err)
		}
		if ok, _ := exists(flags.Out()); ok {
			log.Printf("[OUTPUT] overwriting %s", flags.Out())
		}
		if err := savePNG(flags.Out(), img, flags.Scale()); err != nil {
			log.Fatalf("[OUTPUT ERROR]: %v", err)
		}
		return
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	renderWidth := flags.Width()
	renderHeight := flags.Height()
	window, err := glfw.CreateWindow(renderWidth*flags.Scale(), renderHeight*flags.Scale(), "raycaster", nil, nil)
	if err != nil {
		panic(err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	blitProgram := buildShader(`
	#version 460 core
	layout(location = 0) in vec2 position;
	layout(location = 1) in vec2 texCoord;
	out vec2 uv;
	void main() {
		uv = texCoord;
		gl_Position = vec4(position, 0.0, 1.0);
	}`+"\x00", `
	#version 460 core
	in vec2 uv;
	out vec4 fragColor;
	uniform sampler2D tex;
	void main() {
		fragColor = texture(tex, uv);
	}`+"\x00")

	quadVertices := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	// Image rows run top to bottom, GL texture rows bottom to top.
	texCoords := []float32{0, 1, 1, 1, 0, 0, 1, 0}

	var blitVAO, blitVBO, blitTBO uint32
	gl.GenVertexArrays(1, &blitVAO)
	gl.BindVertexArray(blitVAO)

	gl.GenBuffers(1, &blitVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &blitTBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitTBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(texCoords)*4, gl.Ptr(texCoords), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(1)

	img, err := render(ctx, s, flags)
	if err != nil {
		log.Fatalf("[RENDER ERROR]: %v", err)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(renderWidth), int32(renderHeight), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	movementSpeed := float32(2)

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		// Light movement
		movement := geom.New(0, 0, 0)
		movementScale := float32(1.0)
		if window.GetKey(glfw.KeyLeftControl) == glfw.Press {
			movementScale = 0.2
		}
		if window.GetKey(glfw.KeyW) == glfw.Press {
			movement = movement.Add(geom.New(0, 0, -movementSpeed))
		}
		if window.GetKey(glfw.KeyS) == glfw.Press {
			movement = movement.Add(geom.New(0, 0, movementSpeed))
		}
		if window.GetKey(glfw.KeyA) == glfw.Press {
			movement = movement.Add(geom.New(-movementSpeed, 0, 0))
		}
		if window.GetKey(glfw.KeyD) == glfw.Press {
			movement = movement.Add(geom.New(movementSpeed, 0, 0))
		}
		if window.GetKey(glfw.KeyQ) == glfw.Press {
			movement = movement.Add(geom.New(0, movementSpeed, 0))
		}
		if window.GetKey(glfw.KeyE) == glfw.Press {
			movement = movement.Add(geom.New(0, -movementSpeed, 0))
		}
		if movement.LengthSquared() > 0 {
			s.Light = s.Light.TranslatedBy(movement.Scale(movementScale))
			img, err = render(ctx, s, flags)
			if err != nil {
				log.Fatalf("[RENDER ERROR]: %v", err)
			}
			gl.BindTexture(gl.TEXTURE_2D, tex)
			gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(renderWidth), int32(renderHeight), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(blitProgram)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BindVertexArray(blitVAO)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		window.SwapBuffers()
		glfw.PollEvents()
	}
}
